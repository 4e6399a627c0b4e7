// Package item provides the item metadata lookup the tile codec dispatches
// on. The database is loaded once and shared read-only across every world
// decode; the codec never writes to it.
package item

// Category selects which extra-data payload shape a tile carries. The
// numeric values are the game's tile-extra type codes and are part of the
// dispatch contract, not arbitrary.
type Category uint8

const (
	CategoryNone                      Category = 0
	CategoryDoor                      Category = 1
	CategorySign                      Category = 2
	CategoryLock                      Category = 3
	CategorySeed                      Category = 4
	CategoryMailbox                   Category = 6
	CategoryBulletin                  Category = 7
	CategoryDice                      Category = 8
	CategoryChemicalSource            Category = 9
	CategoryAchievementBlock          Category = 10
	CategoryHeartMonitor              Category = 11
	CategoryDonationBox               Category = 12
	CategoryMannequin                 Category = 14
	CategoryBunnyEgg                  Category = 15
	CategoryGamePack                  Category = 16
	CategoryGameGenerator             Category = 17
	CategoryXenoniteCrystal           Category = 18
	CategoryPhoneBooth                Category = 19
	CategoryCrystal                   Category = 20
	CategoryCrimeInProgress           Category = 21
	CategorySpotlight                 Category = 22
	CategoryDisplayBlock              Category = 23
	CategoryVendingMachine            Category = 24
	CategoryFishTankPort              Category = 25
	CategorySolarCollector            Category = 26
	CategoryForge                     Category = 27
	CategoryGivingTree                Category = 28
	CategorySteamOrgan                Category = 30
	CategorySilkWorm                  Category = 31
	CategorySewingMachine             Category = 32
	CategoryCountryFlag               Category = 33
	CategoryLobsterTrap               Category = 34
	CategoryPaintingEasel             Category = 35
	CategoryPetBattleCage             Category = 36
	CategoryPetTrainer                Category = 37
	CategorySteamEngine               Category = 38
	CategoryLockBot                   Category = 39
	CategoryWeatherMachine            Category = 40
	CategorySpiritStorageUnit         Category = 41
	CategoryDataBedrock               Category = 42
	CategoryShelf                     Category = 43
	CategoryVipEntrance               Category = 44
	CategoryChallengeTimer            Category = 45
	CategoryFishWallMount             Category = 47
	CategoryPortrait                  Category = 48
	CategoryGuildWeatherMachine       Category = 49
	CategoryFossilPrepStation         Category = 50
	CategoryDnaExtractor              Category = 51
	CategoryHowler                    Category = 52
	CategoryChemsynthTank             Category = 53
	CategoryStorageBlock              Category = 54
	CategoryCookingOven               Category = 55
	CategoryAudioRack                 Category = 56
	CategoryGeigerCharger             Category = 57
	CategoryAdventureBegins           Category = 58
	CategoryTombRobber                Category = 59
	CategoryBalloonOMatic             Category = 60
	CategoryTrainingPort              Category = 61
	CategoryItemSucker                Category = 62
	CategoryCyBot                     Category = 63
	CategoryGuildItem                 Category = 65
	CategoryGrowscan                  Category = 66
	CategoryContainmentFieldPowerNode Category = 67
	CategorySpiritBoard               Category = 68
	CategoryStormyCloud               Category = 72
	CategoryTemporaryPlatform         Category = 73
	CategorySafeVault                 Category = 74
	CategoryAngelicCountingCloud      Category = 75
	CategoryInfinityWeatherMachine    Category = 77
	CategoryPineappleGuzzler          Category = 79
	CategoryKrakenGalacticBlock       Category = 80
	CategoryFriendsEntrance           Category = 81
)

// Meta is one item's metadata. Only Category drives the codec; the rest is
// display and game-logic state carried for tools.
type Meta struct {
	ID         uint16   `yaml:"id" json:"id"`
	Name       string   `yaml:"name" json:"name"`
	ActionType uint8    `yaml:"action" json:"action"`
	Category   Category `yaml:"category" json:"category"`
	GrowTime   uint32   `yaml:"grow_time" json:"grow_time"`
	BaseColor  uint32   `yaml:"base_color" json:"base_color"`
}

// Database resolves item ids to metadata. Implementations must be safe for
// concurrent readers; the codec only ever calls Lookup.
type Database interface {
	Lookup(id uint16) (*Meta, bool)
}

// Store is a map-backed Database.
type Store struct {
	items map[uint16]*Meta
}

func NewStore() *Store {
	return &Store{items: make(map[uint16]*Meta)}
}

// Put registers or replaces one item. Not safe to call concurrently with
// Lookup; populate the store fully before sharing it.
func (s *Store) Put(m *Meta) {
	s.items[m.ID] = m
}

func (s *Store) Lookup(id uint16) (*Meta, bool) {
	m, ok := s.items[id]
	return m, ok
}

// Len returns the number of registered items.
func (s *Store) Len() int {
	return len(s.items)
}
