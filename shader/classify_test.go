package shader

import "testing"

var classifyTests = []struct {
	name      string
	tinted    bool
	cutout    bool
	terrain   bool
	water     bool
	tintFlags int
}{
	{"cutout.sps", true, true, false, false, 0},
	{"trees_shadow_proxy.sps", true, true, false, false, 0},
	{"vehicle_vehglass.sps", true, false, false, false, 0},
	{"terrain_cb_w_4lyr.sps", false, false, true, false, 0},
	{"water_fountain.sps", false, false, false, true, 0},
	{"trees_tnt.sps", true, true, false, false, 1},
	{"weapon_normal_spec_palette.sps", false, false, false, false, 2},
	{"nonexistent.sps", false, false, false, false, 0},
}

func TestClassification(t *testing.T) {
	for _, test := range classifyTests {
		if got := IsTinted(test.name); got != test.tinted {
			t.Errorf("IsTinted(%q)=%v; expected %v", test.name, got, test.tinted)
		}
		if got := IsCutout(test.name); got != test.cutout {
			t.Errorf("IsCutout(%q)=%v; expected %v", test.name, got, test.cutout)
		}
		if got := IsTerrain(test.name); got != test.terrain {
			t.Errorf("IsTerrain(%q)=%v; expected %v", test.name, got, test.terrain)
		}
		if got := IsWater(test.name); got != test.water {
			t.Errorf("IsWater(%q)=%v; expected %v", test.name, got, test.water)
		}
		if got := TintFlags(test.name); got != test.tintFlags {
			t.Errorf("TintFlags(%q)=%v; expected %v", test.name, got, test.tintFlags)
		}
	}
}

func TestMaskOnlyTerrainsAreTerrains(t *testing.T) {
	for _, name := range MaskOnlyTerrains {
		if !IsTerrain(name) {
			t.Errorf("Mask-only terrain %q missing from terrain table", name)
		}
	}
}

func TestCategories(t *testing.T) {
	got := Categories("glass_emissive.sps")
	expected := map[string]struct{}{"glass": {}, "emissive": {}, "tinted": {}}
	if len(got) != len(expected) {
		t.Fatalf("Categories(glass_emissive.sps)=%v; expected glass/emissive/tinted", got)
	}
	for _, c := range got {
		if _, ok := expected[c]; !ok {
			t.Errorf("Unexpected category %q", c)
		}
	}
}
