package utils

import "testing"

var hashTests = []struct {
	in_str   string
	out_hash uint32
}{
	{"", 0x0},
	{"a", 0xca2e9442},
	{"default.sps", 0x18ad1594},
	{"Default.sps", 0x18ad1594},
	{"DEFAULT.SPS", 0x18ad1594},
	{"normal_spec.sps", 0x14a780fd},
	{"terrain_cb_w_4lyr.sps", 0x7f0b662b},
	{"cutout.sps", 0x5b380b60},
	{"vehicle_paint1.sps", 0xc333cc82},
	{"water_fountain.sps", 0xeb2c7ef3},
	{"weapon_normal_spec_palette.sps", 0x2b92f2ab},
}

func TestHashJenkins(t *testing.T) {
	for _, test := range hashTests {
		result := HashJenkins(test.in_str)
		if result != test.out_hash {
			t.Errorf("HashJenkins(%q)=0x%.8x; expected 0x%.8x", test.in_str, result, test.out_hash)
		}
	}
}

func TestHashJenkinsDeterministic(t *testing.T) {
	var rng RandomNameGenerator
	for i := 0; i < 64; i++ {
		name := rng.RandomName() + ".sps"
		if HashJenkins(name) != HashJenkins(name) {
			t.Errorf("HashJenkins(%q) is not deterministic", name)
		}
	}
}
