package recipes

import (
	"math/rand"

	"github.com/funkworks/discoforge/pkg/synth"
)

// soundEffects renders the combat and UI effect bank as mono WAVs.
// Every effect is mixed from the same oscillator and envelope blocks so
// the bank hangs together; levels are left to the shared peak pass.
func soundEffects(ctx *Context) error {
	gens := []struct {
		name  string
		build func(*rand.Rand) synth.Buffer
	}{
		{"shoot_pistol", sfxShootPistol},
		{"shoot_shotgun", sfxShootShotgun},
		{"shoot_smg", sfxShootSMG},
		{"shoot_sniper", sfxShootSniper},
		{"shoot_rifle", sfxShootRifle},
		{"shoot_launcher", sfxShootLauncher},
		{"impact_hit", sfxImpactHit},
		{"impact_crit", sfxImpactCrit},
		{"explosion", sfxExplosion},
		{"enemy_death", sfxEnemyDeath},
		{"player_hurt", sfxPlayerHurt},
		{"player_death", sfxPlayerDeath},
		{"shield_break", sfxShieldBreak},
		{"shield_recharge", sfxShieldRecharge},
		{"loot_pickup", sfxLootPickup},
		{"weapon_swap", sfxWeaponSwap},
		{"menu_select", sfxMenuSelect},
	}
	for _, g := range gens {
		buf := g.build(ctx.Rng)
		if err := ctx.SaveWAV(ctx.AudioPath("sfx", g.name+".wav"), buf, 1); err != nil {
			return err
		}
	}
	return nil
}

// sfxShootPistol is a short snappy pop.
func sfxShootPistol(rng *rand.Rand) synth.Buffer {
	const dur = 0.12
	sig := synth.Gain(synth.Square(800, dur, 0.5), 0.5)
	synth.MixAt(sig, synth.Gain(synth.Noise(rng, dur), 0.3), 0)
	synth.MixAt(sig, synth.Gain(synth.Sweep(1200, 200, dur, synth.WaveSquare), 0.3), 0)
	return synth.Apply(sig, synth.ADSR(len(sig), 0.001, 0.02, 0.2, 0.06))
}

// sfxShootShotgun is a wide bass-heavy boom.
func sfxShootShotgun(rng *rand.Rand) synth.Buffer {
	const dur = 0.2
	sig := synth.Gain(synth.Noise(rng, dur), 0.6)
	synth.MixAt(sig, synth.Gain(synth.Square(150, dur, 0.5), 0.4), 0)
	synth.MixAt(sig, synth.Gain(synth.Sweep(600, 80, dur, synth.WaveSquare), 0.3), 0)
	return synth.Apply(sig, synth.ADSR(len(sig), 0.001, 0.04, 0.3, 0.12))
}

// sfxShootSMG is a rapid staccato tap.
func sfxShootSMG(rng *rand.Rand) synth.Buffer {
	const dur = 0.06
	sig := synth.Gain(synth.Square(1000, dur, 0.5), 0.5)
	synth.MixAt(sig, synth.Gain(synth.Noise(rng, dur), 0.4), 0)
	synth.MixAt(sig, synth.Gain(synth.Sweep(1500, 600, dur, synth.WaveSquare), 0.2), 0)
	return synth.Apply(sig, synth.ADSR(len(sig), 0.001, 0.01, 0.3, 0.02))
}

// sfxShootSniper is a sharp crack followed by a descending echo tail.
func sfxShootSniper(rng *rand.Rand) synth.Buffer {
	crack := synth.Gain(synth.Noise(rng, 0.02), 0.8)
	tail := synth.Gain(synth.Sweep(2000, 200, 0.33, synth.WaveSquare), 0.3)
	tail = synth.Apply(tail, synth.DecayEnv(len(tail), 0.25))
	sig := synth.Concat(crack, tail)
	return synth.Apply(sig, synth.ADSR(len(sig), 0.001, 0.01, 0.25, 0.2))
}

// sfxShootRifle is a medium punch.
func sfxShootRifle(rng *rand.Rand) synth.Buffer {
	const dur = 0.1
	sig := synth.Gain(synth.Square(600, dur, 0.5), 0.5)
	synth.MixAt(sig, synth.Gain(synth.Noise(rng, dur), 0.35), 0)
	synth.MixAt(sig, synth.Gain(synth.Sweep(900, 300, dur, synth.WaveSquare), 0.25), 0)
	return synth.Apply(sig, synth.ADSR(len(sig), 0.001, 0.02, 0.3, 0.05))
}

// sfxShootLauncher is a deep whomp.
func sfxShootLauncher(rng *rand.Rand) synth.Buffer {
	const dur = 0.3
	sig := synth.Gain(synth.Sweep(300, 50, dur, synth.WaveSine), 0.6)
	synth.MixAt(sig, synth.Gain(synth.Noise(rng, dur), 0.3), 0)
	synth.MixAt(sig, synth.Gain(synth.Square(80, dur, 0.5), 0.3), 0)
	return synth.Apply(sig, synth.ADSR(len(sig), 0.005, 0.06, 0.3, 0.15))
}

// sfxImpactHit is a metallic ping.
func sfxImpactHit(rng *rand.Rand) synth.Buffer {
	const dur = 0.1
	sig := synth.Gain(synth.Sine(1200, dur), 0.4)
	synth.MixAt(sig, synth.Gain(synth.Square(800, dur, 0.5), 0.3), 0)
	synth.MixAt(sig, synth.Gain(synth.Noise(rng, dur), 0.2), 0)
	return synth.Apply(sig, synth.Punch(len(sig)))
}

// sfxImpactCrit is a louder ping with crunch.
func sfxImpactCrit(rng *rand.Rand) synth.Buffer {
	const dur = 0.15
	sig := synth.Gain(synth.Sine(1600, dur), 0.4)
	synth.MixAt(sig, synth.Gain(synth.Square(1000, dur, 0.5), 0.3), 0)
	synth.MixAt(sig, synth.Gain(synth.Noise(rng, dur), 0.4), 0)
	synth.MixAt(sig, synth.Gain(synth.Sweep(2000, 500, dur, synth.WaveSquare), 0.2), 0)
	return synth.Apply(sig, synth.Punch(len(sig)))
}

// sfxExplosion layers a bass boom, a noise crackle, and a low rumble,
// each with its own decay.
func sfxExplosion(rng *rand.Rand) synth.Buffer {
	sig := synth.Silence(0.5)
	boom := synth.Gain(synth.Sweep(200, 30, 0.3, synth.WaveSine), 0.7)
	synth.MixAt(sig, synth.Apply(boom, synth.DecayEnv(len(boom), 0.2)), 0)
	crackle := synth.Gain(synth.Noise(rng, 0.4), 0.4)
	synth.MixAt(sig, synth.Apply(crackle, synth.DecayEnv(len(crackle), 0.3)), 0)
	rumble := synth.Gain(synth.Square(60, 0.5, 0.5), 0.2)
	synth.MixAt(sig, synth.Apply(rumble, synth.DecayEnv(len(rumble), 0.15)), 0)
	return sig
}

// sfxEnemyDeath is a short descending tone.
func sfxEnemyDeath(rng *rand.Rand) synth.Buffer {
	const dur = 0.25
	sig := synth.Gain(synth.Sweep(800, 100, dur, synth.WaveSquare), 0.5)
	synth.MixAt(sig, synth.Gain(synth.Noise(rng, dur), 0.15), 0)
	return synth.Apply(sig, synth.ADSR(len(sig), 0.001, 0.05, 0.3, 0.1))
}

// sfxPlayerHurt is a low-frequency grunt.
func sfxPlayerHurt(rng *rand.Rand) synth.Buffer {
	const dur = 0.15
	sig := synth.Gain(synth.Sweep(400, 150, dur, synth.WaveSquare), 0.5)
	synth.MixAt(sig, synth.Gain(synth.Noise(rng, dur), 0.3), 0)
	synth.MixAt(sig, synth.Gain(synth.Sine(100, dur), 0.3), 0)
	return synth.Apply(sig, synth.Punch(len(sig)))
}

// sfxPlayerDeath is a long descending dirge.
func sfxPlayerDeath(rng *rand.Rand) synth.Buffer {
	const dur = 0.6
	sig := synth.Gain(synth.Sweep(600, 50, dur, synth.WaveSquare), 0.4)
	synth.MixAt(sig, synth.Gain(synth.Sweep(400, 30, dur, synth.WaveSine), 0.3), 0)
	synth.MixAt(sig, synth.Gain(synth.Noise(rng, dur), 0.1), 0)
	return synth.Apply(sig, synth.ADSR(len(sig), 0.005, 0.1, 0.3, 0.3))
}

// sfxShieldBreak is a glass shatter, an electric zap, and a scatter of
// high tinkles.
func sfxShieldBreak(rng *rand.Rand) synth.Buffer {
	sig := synth.Silence(0.3)
	shatter := synth.Gain(synth.Noise(rng, 0.08), 0.7)
	synth.MixAt(sig, synth.Apply(shatter, synth.DecayEnv(len(shatter), 0.06)), 0)
	zap := synth.Gain(synth.Sweep(3000, 200, 0.22, synth.WaveSquare), 0.4)
	synth.MixAt(sig, synth.Apply(zap, synth.DecayEnv(len(zap), 0.15)), 0)
	for i := 0; i < 5; i++ {
		offset := int(synth.SampleRate * float64(i) * 0.04)
		tone := synth.Gain(synth.Sine(float64(2000+i*500), 0.03), 0.2)
		synth.MixAt(sig, synth.Apply(tone, synth.DecayEnv(len(tone), 0.02)), offset)
	}
	return sig
}

// sfxShieldRecharge is a rising hum with a harmonic.
func sfxShieldRecharge(_ *rand.Rand) synth.Buffer {
	const dur = 0.4
	sig := synth.Gain(synth.Sweep(200, 1200, dur, synth.WaveSine), 0.4)
	synth.MixAt(sig, synth.Gain(synth.Sweep(300, 1800, dur, synth.WaveSine), 0.2), 0)
	return synth.Apply(sig, synth.ADSR(len(sig), 0.05, 0.05, 0.7, 0.15))
}

// sfxLootPickup is a two-note C5 to E5 chime with a sparkle sweep.
func sfxLootPickup(_ *rand.Rand) synth.Buffer {
	sig := synth.Concat(
		synth.Gain(synth.Sine(523, 0.12), 0.5),
		synth.Gain(synth.Sine(659, 0.18), 0.5),
	)
	synth.MixAt(sig, synth.Gain(synth.Sweep(1000, 3000, 0.3, synth.WaveSine), 0.15), 0)
	return synth.Apply(sig, synth.ADSR(len(sig), 0.005, 0.03, 0.6, 0.1))
}

// sfxWeaponSwap is a click/rack.
func sfxWeaponSwap(rng *rand.Rand) synth.Buffer {
	const dur = 0.08
	sig := synth.Gain(synth.Noise(rng, dur), 0.5)
	synth.MixAt(sig, synth.Gain(synth.Square(600, dur, 0.5), 0.3), 0)
	return synth.Apply(sig, synth.ADSR(len(sig), 0.001, 0.015, 0.2, 0.03))
}

// sfxMenuSelect is a UI blip.
func sfxMenuSelect(_ *rand.Rand) synth.Buffer {
	const dur = 0.08
	sig := synth.Gain(synth.Sine(880, dur), 0.4)
	synth.MixAt(sig, synth.Gain(synth.Square(880, dur, 0.5), 0.2), 0)
	return synth.Apply(sig, synth.ADSR(len(sig), 0.002, 0.01, 0.5, 0.03))
}
