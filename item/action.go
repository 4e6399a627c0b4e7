package item

// actionCategory maps the game's item action types to extra-data categories.
// Item tables extracted from the client carry action types, not categories;
// this is the bridge for loaders that only have the action code.
var actionCategory = map[uint8]Category{
	2:  CategoryDoor,
	3:  CategoryLock,
	10: CategorySign,
	13: CategoryDoor,
	19: CategorySeed,
	26: CategoryDoor,
	33: CategoryMailbox,
	34: CategoryBulletin,
	36: CategoryDice,
	38: CategoryChemicalSource,
	40: CategoryAchievementBlock,
	43: CategoryDoor,
	46: CategoryHeartMonitor,
	47: CategoryDonationBox,
	48: CategoryMannequin, // toy box shares the mannequin slot layout
	49: CategoryMannequin,
	51: CategoryBunnyEgg,
	52: CategoryGamePack,
	53: CategoryGameGenerator,
	54: CategoryXenoniteCrystal,
	55: CategoryPhoneBooth,
	56: CategoryCrystal,
	57: CategoryCrimeInProgress,
	59: CategorySpotlight,
	61: CategoryDisplayBlock,
	62: CategoryVendingMachine,
	63: CategoryFishTankPort,
	65: CategorySolarCollector,
	66: CategoryForge,
	67: CategoryGivingTree,
	71: CategorySteamOrgan,
	72: CategorySilkWorm,
	73: CategorySewingMachine,
	74: CategoryCountryFlag,
	75: CategoryLobsterTrap,
	76: CategoryPaintingEasel,
	77: CategoryPetBattleCage,
	78: CategoryPetTrainer,
	79: CategorySteamEngine,
	80: CategoryLockBot,
	81: CategoryWeatherMachine,
	82: CategorySpiritStorageUnit,
	83: CategoryShelf,
	84: CategoryVipEntrance,
	85: CategoryChallengeTimer,
	86: CategoryCountryFlag,
	87: CategoryFishWallMount,
	88: CategoryPortrait,
	89: CategoryGuildWeatherMachine,
	92: CategoryDnaExtractor,
}

// CategoryForAction returns the extra-data category for an item action type,
// or CategoryNone when the action carries no extra data.
func CategoryForAction(action uint8) Category {
	if c, ok := actionCategory[action]; ok {
		return c
	}
	return CategoryNone
}
