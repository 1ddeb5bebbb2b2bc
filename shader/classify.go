package shader

// Curated classification tables. These group known shader filenames
// by rendering behavior and are fixed data, not derived from the
// catalog document.

var Terrains = []string{"terrain_cb_w_4lyr.sps", "terrain_cb_w_4lyr_lod.sps", "terrain_cb_w_4lyr_spec.sps", "terrain_cb_w_4lyr_spec_pxm.sps", "terrain_cb_w_4lyr_pxm_spm.sps",
	"terrain_cb_w_4lyr_pxm.sps", "terrain_cb_w_4lyr_cm_pxm.sps", "terrain_cb_w_4lyr_cm_tnt.sps", "terrain_cb_w_4lyr_cm_pxm_tnt.sps", "terrain_cb_w_4lyr_cm.sps",
	"terrain_cb_w_4lyr_2tex.sps", "terrain_cb_w_4lyr_2tex_blend.sps", "terrain_cb_w_4lyr_2tex_blend_lod.sps", "terrain_cb_w_4lyr_2tex_blend_pxm.sps",
	"terrain_cb_w_4lyr_2tex_blend_pxm_spm.sps", "terrain_cb_w_4lyr_2tex_pxm.sps", "terrain_cb_4lyr.sps", "terrain_cb_w_4lyr_spec_int_pxm.sps",
	"terrain_cb_w_4lyr_spec_int.sps", "terrain_cb_4lyr_lod.sps"}

var MaskOnlyTerrains = []string{"terrain_cb_w_4lyr_cm.sps", "terrain_cb_w_4lyr_cm_tnt.sps",
	"terrain_cb_w_4lyr_cm_pxm_tnt.sps", "terrain_cb_w_4lyr_cm_pxm.sps"}

var Cutouts = []string{"cutout.sps", "cutout_um.sps", "cutout_tnt.sps", "cutout_fence.sps", "cutout_fence_normal.sps", "cutout_hard.sps", "cutout_spec_tnt.sps", "normal_cutout.sps",
	"normal_cutout_tnt.sps", "normal_cutout_um.sps", "normal_spec_cutout.sps", "normal_spec_cutout_tnt.sps", "trees_lod.sps", "trees.sps", "trees_tnt.sps",
	"trees_normal.sps", "trees_normal_spec.sps", "trees_normal_spec_tnt.sps", "trees_normal_diffspec.sps", "trees_normal_diffspec_tnt.sps"}

var Alphas = []string{"normal_spec_alpha.sps", "normal_spec_reflect_alpha.sps", "normal_spec_reflect_emissivenight_alpha.sps", "normal_spec_screendooralpha.sps", "normal_alpha.sps",
	"normal_reflect_alpha.sps", "emissive_alpha.sps", "emissive_alpha_tnt.sps", "emissive_clip.sps", "emissive_additive_alpha.sps", "emissivenight_alpha.sps", "emissivestrong_alpha.sps",
	"spec_alpha.sps", "spec_reflect_alpha.sps", "alpha.sps", "reflect_alpha.sps", "normal_screendooralpha.sps", "spec_screendooralpha.sps", "cloth_spec_alpha.sps",
	"cloth_normal_spec_alpha.sps"}

var Glasses = []string{"glass.sps", "glass_pv.sps", "glass_pv_env.sps", "glass_env.sps", "glass_spec.sps", "glass_reflect.sps", "glass_emissive.sps", "glass_emissivenight.sps",
	"glass_emissivenight_alpha.sps", "glass_breakable.sps", "glass_breakable_screendooralpha.sps", "glass_displacement.sps", "glass_normal_spec_reflect.sps",
	"glass_emissive_alpha.sps"}

var Decals = []string{"decal.sps", "decal_tnt.sps", "decal_glue.sps", "decal_spec_only.sps", "decal_normal_only.sps", "decal_emissive_only.sps", "decal_emissivenight_only.sps",
	"decal_amb_only.sps", "normal_decal.sps", "normal_decal_pxm.sps", "normal_decal_pxm_tnt.sps", "normal_decal_tnt.sps", "normal_spec_decal.sps", "normal_spec_decal_detail.sps",
	"normal_spec_decal_nopuddle.sps", "normal_spec_decal_tnt.sps", "normal_spec_decal_pxm.sps", "spec_decal.sps", "spec_reflect_decal.sps", "reflect_decal.sps", "decal_dirt.sps",
	"mirror_decal.sps", "grass_batch.sps"}

var VehicleCutouts = []string{"vehicle_cutout.sps", "vehicle_badges.sps"}

var VehicleGlasses = []string{"vehicle_vehglass.sps", "vehicle_vehglass_inner.sps"}

var VehicleDecals = []string{"vehicle_decal.sps", "vehicle_decal2.sps",
	"vehicle_blurredrotor_emissive.sps"}

var ShadowProxies = []string{"trees_shadow_proxy.sps"}

var TintFlag1 = []string{"trees_normal_diffspec_tnt.sps",
	"trees_tnt.sps", "trees_normal_spec_tnt.sps"}

var TintFlag2 = []string{"weapon_normal_spec_detail_tnt.sps", "weapon_normal_spec_cutout_palette.sps",
	"weapon_normal_spec_detail_palette.sps", "weapon_normal_spec_palette.sps"}

var EmissiveShaders = []string{"normal_spec_emissive.sps", "normal_spec_reflect_emissivenight.sps", "emissive.sps", "emissive_speclum.sps", "emissive_tnt.sps", "emissivenight.sps",
	"emissivenight_geomnightonly.sps", "emissivestrong_alpha.sps", "emissivestrong.sps", "glass_emissive.sps", "glass_emissivenight.sps", "glass_emissivenight_alpha.sps",
	"glass_emissive_alpha.sps", "decal_emissive_only.sps", "decal_emissivenight_only.sps"}

var WaterShaders = []string{"water_fountain.sps",
	"water_poolenv.sps", "water_decal.sps", "water_terrainfoam.sps", "water_riverlod.sps", "water_shallow.sps", "water_riverfoam.sps", "water_riverocean.sps", "water_rivershallow.sps"}

// TintedShaders lists every filename whose material picks up tint.
func TintedShaders() []string {
	return concat(Cutouts, Alphas, Glasses, Decals, VehicleCutouts, VehicleGlasses, VehicleDecals, ShadowProxies)
}

// CutoutShaders lists every filename rendered with alpha cutout.
func CutoutShaders() []string {
	return concat(Cutouts, VehicleCutouts, ShadowProxies)
}

func concat(groups ...[]string) []string {
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	out := make([]string, 0, total)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func toSet(groups ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, g := range groups {
		for _, name := range g {
			set[name] = struct{}{}
		}
	}
	return set
}

var (
	tintedSet          = toSet(TintedShaders())
	cutoutSet          = toSet(CutoutShaders())
	terrainSet         = toSet(Terrains)
	maskOnlyTerrainSet = toSet(MaskOnlyTerrains)
	alphaSet           = toSet(Alphas)
	glassSet           = toSet(Glasses)
	decalSet           = toSet(Decals)
	emissiveSet        = toSet(EmissiveShaders)
	waterSet           = toSet(WaterShaders)
	tintFlag1Set       = toSet(TintFlag1)
	tintFlag2Set       = toSet(TintFlag2)
)

func contains(set map[string]struct{}, name string) bool {
	_, ok := set[name]
	return ok
}

func IsTinted(name string) bool          { return contains(tintedSet, name) }
func IsCutout(name string) bool          { return contains(cutoutSet, name) }
func IsTerrain(name string) bool         { return contains(terrainSet, name) }
func IsMaskOnlyTerrain(name string) bool { return contains(maskOnlyTerrainSet, name) }
func IsAlpha(name string) bool           { return contains(alphaSet, name) }
func IsGlass(name string) bool           { return contains(glassSet, name) }
func IsDecal(name string) bool           { return contains(decalSet, name) }
func IsEmissive(name string) bool        { return contains(emissiveSet, name) }
func IsWater(name string) bool           { return contains(waterSet, name) }

// TintFlags returns the tint flag group of a filename, 0 when it
// belongs to none.
func TintFlags(name string) int {
	if contains(tintFlag1Set, name) {
		return 1
	}
	if contains(tintFlag2Set, name) {
		return 2
	}
	return 0
}

// Categories names every classification table the filename appears
// in. Used by the browse surface.
func Categories(name string) []string {
	categories := make([]string, 0, 4)
	for _, check := range []struct {
		name string
		set  map[string]struct{}
	}{
		{"terrain", terrainSet},
		{"mask_only_terrain", maskOnlyTerrainSet},
		{"cutout", cutoutSet},
		{"alpha", alphaSet},
		{"glass", glassSet},
		{"decal", decalSet},
		{"emissive", emissiveSet},
		{"water", waterSet},
		{"tinted", tintedSet},
	} {
		if contains(check.set, name) {
			categories = append(categories, check.name)
		}
	}
	return categories
}
