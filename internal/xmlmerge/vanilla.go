package xmlmerge

// vanillaNames lists base-game classnames that mods commonly redeclare.
// With the skip_vanilla_duplicates rule enabled, entries whose key matches
// one of these are never merged, so a mod cannot silently shadow the
// stock economy definitions.
var vanillaNames = map[string]struct{}{}

func init() {
	for _, name := range []string{
		"AKM",
		"AK74",
		"AK101",
		"Ammo_556x45",
		"Ammo_762x39",
		"Ammo_9x19",
		"ApplePlant",
		"BakedBeansCan",
		"BandageDressing",
		"BearTrap",
		"BoneBaitUncooked",
		"CanOpener",
		"CanisterGasoline",
		"CattleProd",
		"CharcoalTablets",
		"ChernarusSportShoes",
		"CombatKnife",
		"DuctTape",
		"Epinephrine",
		"FNX45",
		"FieldShovel",
		"FirstAidKit",
		"FishingRod",
		"FlareSimulation",
		"GorkaEJacket_Summer",
		"HandDrillKit",
		"Hatchet",
		"HuntingKnife",
		"Izh18",
		"Izh43Shotgun",
		"KitchenKnife",
		"M4A1",
		"Mag_AKM_30Rnd",
		"Mag_STANAG_30Rnd",
		"Matchbox",
		"Mosin9130",
		"MP5K",
		"NailBox",
		"PeachesCan",
		"PipeWrench",
		"Rag",
		"RiceBox",
		"SalineBagIV",
		"SardinesCan",
		"SewingKit",
		"SpaghettiCan",
		"StoneKnife",
		"TacticalBaconCan",
		"TunaCan",
		"UMP45",
		"WaterBottle",
		"WoodAxe",
		"ZucchiniSeedsPack",
	} {
		vanillaNames[name] = struct{}{}
	}
}

// IsVanillaName reports whether a classname belongs to the base game.
func IsVanillaName(name string) bool {
	_, ok := vanillaNames[name]
	return ok
}
