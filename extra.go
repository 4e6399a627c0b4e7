package gtworld

import (
	"fmt"

	"github.com/gtworld/gtworld/item"
	"github.com/gtworld/gtworld/wire"
)

// TileExtra is the payload attached to a tile whose HasExtraData flag is
// set. The set of implementations is closed: decode picks the shape from the
// foreground item's category, encode replays the stored shape with no
// database access. Field order and widths per shape are the wire contract.
type TileExtra interface {
	// Category returns the item category this payload shape belongs to.
	Category() item.Category

	// encodeTo writes the payload fields in wire order.
	encodeTo(w *wire.Writer)
}

// Basic is the no-payload case: the HasExtraData flag is clear and the tile
// body is exactly the four base fields.
type Basic struct{}

func (*Basic) Category() item.Category { return item.CategoryNone }
func (*Basic) encodeTo(*wire.Writer)   {}

// extraDecoder reads one payload. The tile's base fields are already
// populated; meta is the foreground item's database entry.
type extraDecoder func(r *wire.Reader, t *Tile, meta *item.Meta) (TileExtra, error)

// extraDecoders keys every known payload shape by item category. Adding a
// variant means one struct, one decoder, one encodeTo, one entry here.
var extraDecoders = map[item.Category]extraDecoder{
	item.CategoryDoor:                      decodeDoor,
	item.CategorySign:                      decodeSign,
	item.CategoryLock:                      decodeLock,
	item.CategorySeed:                      decodeSeed,
	item.CategoryMailbox:                   decodeMailbox,
	item.CategoryBulletin:                  decodeBulletin,
	item.CategoryDice:                      decodeDice,
	item.CategoryChemicalSource:            decodeChemicalSource,
	item.CategoryAchievementBlock:          decodeAchievementBlock,
	item.CategoryHeartMonitor:              decodeHeartMonitor,
	item.CategoryDonationBox:               decodeDonationBox,
	item.CategoryMannequin:                 decodeMannequin,
	item.CategoryBunnyEgg:                  decodeBunnyEgg,
	item.CategoryGamePack:                  decodeGamePack,
	item.CategoryGameGenerator:             decodeGameGenerator,
	item.CategoryXenoniteCrystal:           decodeXenoniteCrystal,
	item.CategoryPhoneBooth:                decodePhoneBooth,
	item.CategoryCrystal:                   decodeCrystal,
	item.CategoryCrimeInProgress:           decodeCrimeInProgress,
	item.CategorySpotlight:                 decodeSpotlight,
	item.CategoryDisplayBlock:              decodeDisplayBlock,
	item.CategoryVendingMachine:            decodeVendingMachine,
	item.CategoryFishTankPort:              decodeFishTankPort,
	item.CategorySolarCollector:            decodeSolarCollector,
	item.CategoryForge:                     decodeForge,
	item.CategoryGivingTree:                decodeGivingTree,
	item.CategorySteamOrgan:                decodeSteamOrgan,
	item.CategorySilkWorm:                  decodeSilkWorm,
	item.CategorySewingMachine:             decodeSewingMachine,
	item.CategoryCountryFlag:               decodeCountryFlag,
	item.CategoryLobsterTrap:               decodeLobsterTrap,
	item.CategoryPaintingEasel:             decodePaintingEasel,
	item.CategoryPetBattleCage:             decodePetBattleCage,
	item.CategoryPetTrainer:                decodePetTrainer,
	item.CategorySteamEngine:               decodeSteamEngine,
	item.CategoryLockBot:                   decodeLockBot,
	item.CategoryWeatherMachine:            decodeWeatherMachine,
	item.CategorySpiritStorageUnit:         decodeSpiritStorageUnit,
	item.CategoryDataBedrock:               decodeDataBedrock,
	item.CategoryShelf:                     decodeShelf,
	item.CategoryVipEntrance:               decodeVipEntrance,
	item.CategoryChallengeTimer:            decodeChallengeTimer,
	item.CategoryFishWallMount:             decodeFishWallMount,
	item.CategoryPortrait:                  decodePortrait,
	item.CategoryGuildWeatherMachine:       decodeGuildWeatherMachine,
	item.CategoryFossilPrepStation:         decodeFossilPrepStation,
	item.CategoryDnaExtractor:              decodeDnaExtractor,
	item.CategoryHowler:                    decodeHowler,
	item.CategoryChemsynthTank:             decodeChemsynthTank,
	item.CategoryStorageBlock:              decodeStorageBlock,
	item.CategoryCookingOven:               decodeCookingOven,
	item.CategoryAudioRack:                 decodeAudioRack,
	item.CategoryGeigerCharger:             decodeGeigerCharger,
	item.CategoryAdventureBegins:           decodeAdventureBegins,
	item.CategoryTombRobber:                decodeTombRobber,
	item.CategoryBalloonOMatic:             decodeBalloonOMatic,
	item.CategoryTrainingPort:              decodeTrainingPort,
	item.CategoryItemSucker:                decodeItemSucker,
	item.CategoryCyBot:                     decodeCyBot,
	item.CategoryGuildItem:                 decodeGuildItem,
	item.CategoryGrowscan:                  decodeGrowscan,
	item.CategoryContainmentFieldPowerNode: decodeContainmentFieldPowerNode,
	item.CategorySpiritBoard:               decodeSpiritBoard,
	item.CategoryStormyCloud:               decodeStormyCloud,
	item.CategoryTemporaryPlatform:         decodeTemporaryPlatform,
	item.CategorySafeVault:                 decodeSafeVault,
	item.CategoryAngelicCountingCloud:      decodeAngelicCountingCloud,
	item.CategoryInfinityWeatherMachine:    decodeInfinityWeatherMachine,
	item.CategoryPineappleGuzzler:          decodePineappleGuzzler,
	item.CategoryKrakenGalacticBlock:       decodeKrakenGalacticBlock,
	item.CategoryFriendsEntrance:           decodeFriendsEntrance,
}

// decodeExtra dispatches to the payload codec for the foreground item's
// category.
func decodeExtra(r *wire.Reader, t *Tile, meta *item.Meta) (TileExtra, error) {
	dec, ok := extraDecoders[meta.Category]
	if !ok {
		return nil, fmt.Errorf("%w: item %d (%s) category %d",
			ErrUnknownVariant, meta.ID, meta.Name, meta.Category)
	}
	return dec(r, t, meta)
}
