package gtworld

import "github.com/gtworld/gtworld/item"

// Catalog of tile payload shapes. Fields named UnknownN have no documented
// game meaning; they are decoded into typed values and re-emitted unchanged
// so a round trip is byte-identical.

// Door covers doors, portals and other entrances sharing the door layout.
type Door struct {
	Text     string `json:"text"`
	Unknown1 uint8  `json:"unknown_1"`
}

type Sign struct {
	Text     string `json:"text"`
	Unknown1 uint32 `json:"unknown_1"`
}

// Lock is the access-control payload. AccessCount mirrors the wire count
// field; keep it equal to len(AccessUIDs) when mutating. GuildData is the
// 16-byte trailer present only on the Guild Lock item.
type Lock struct {
	Settings     uint8    `json:"settings"`
	OwnerUID     uint32   `json:"owner_uid"`
	AccessCount  uint32   `json:"access_count"`
	AccessUIDs   []uint32 `json:"access_uids"`
	MinimumLevel uint8    `json:"minimum_level"`
	Unknown1     [7]byte  `json:"unknown_1"`
	GuildData    []byte   `json:"guild_data,omitempty"`
}

// Seed tracks growth. ReadyToHarvest is derived from the item's grow time at
// decode and is not part of the wire payload.
type Seed struct {
	TimePassed     uint32 `json:"time_passed"`
	ItemOnTree     uint8  `json:"item_on_tree"`
	ReadyToHarvest bool   `json:"ready_to_harvest"`
}

type Mailbox struct {
	Unknown1 string `json:"unknown_1"`
	Unknown2 string `json:"unknown_2"`
	Unknown3 string `json:"unknown_3"`
	Unknown4 uint8  `json:"unknown_4"`
}

type Bulletin struct {
	Unknown1 string `json:"unknown_1"`
	Unknown2 string `json:"unknown_2"`
	Unknown3 string `json:"unknown_3"`
	Unknown4 uint8  `json:"unknown_4"`
}

type Dice struct {
	Symbol uint8 `json:"symbol"`
}

type ChemicalSource struct {
	TimePassed     uint32 `json:"time_passed"`
	ReadyToHarvest bool   `json:"ready_to_harvest"`
}

type AchievementBlock struct {
	Unknown1 uint32 `json:"unknown_1"`
	TileType uint8  `json:"tile_type"`
}

type HeartMonitor struct {
	Unknown1   uint32 `json:"unknown_1"`
	PlayerName string `json:"player_name"`
}

type DonationBox struct {
	Unknown1 string `json:"unknown_1"`
	Unknown2 string `json:"unknown_2"`
	Unknown3 string `json:"unknown_3"`
	Unknown4 uint8  `json:"unknown_4"`
}

// Mannequin's first clothing slot is wider than the rest; that asymmetry is
// on the wire, not a transcription error.
type Mannequin struct {
	Text       string `json:"text"`
	Unknown1   uint8  `json:"unknown_1"`
	Clothing1  uint32 `json:"clothing_1"`
	Clothing2  uint16 `json:"clothing_2"`
	Clothing3  uint16 `json:"clothing_3"`
	Clothing4  uint16 `json:"clothing_4"`
	Clothing5  uint16 `json:"clothing_5"`
	Clothing6  uint16 `json:"clothing_6"`
	Clothing7  uint16 `json:"clothing_7"`
	Clothing8  uint16 `json:"clothing_8"`
	Clothing9  uint16 `json:"clothing_9"`
	Clothing10 uint16 `json:"clothing_10"`
}

type BunnyEgg struct {
	EggPlaced uint32 `json:"egg_placed"`
}

type GamePack struct {
	Team uint8 `json:"team"`
}

type GameGenerator struct{}

type XenoniteCrystal struct {
	Unknown1 uint8  `json:"unknown_1"`
	Unknown2 uint32 `json:"unknown_2"`
}

type PhoneBooth struct {
	Clothing1 uint16 `json:"clothing_1"`
	Clothing2 uint16 `json:"clothing_2"`
	Clothing3 uint16 `json:"clothing_3"`
	Clothing4 uint16 `json:"clothing_4"`
	Clothing5 uint16 `json:"clothing_5"`
	Clothing6 uint16 `json:"clothing_6"`
	Clothing7 uint16 `json:"clothing_7"`
	Clothing8 uint16 `json:"clothing_8"`
	Clothing9 uint16 `json:"clothing_9"`
}

type Crystal struct {
	Unknown1 string `json:"unknown_1"`
}

type CrimeInProgress struct {
	Unknown1 string `json:"unknown_1"`
	Unknown2 uint32 `json:"unknown_2"`
	Unknown3 uint8  `json:"unknown_3"`
}

type Spotlight struct{}

type DisplayBlock struct {
	ItemID uint32 `json:"item_id"`
}

type VendingMachine struct {
	ItemID uint32 `json:"item_id"`
	Price  int32  `json:"price"`
}

// FishTankPort's wire count is twice the number of fish records; FishCount
// keeps the raw value so odd counts survive a round trip.
type FishTankPort struct {
	Flags     uint8      `json:"flags"`
	FishCount uint32     `json:"fish_count"`
	Fishes    []FishInfo `json:"fishes"`
}

type FishInfo struct {
	FishItemID uint32 `json:"fish_item_id"`
	Lbs        uint32 `json:"lbs"`
}

type SolarCollector struct {
	Unknown1 [5]byte `json:"unknown_1"`
}

type Forge struct {
	Temperature uint32 `json:"temperature"`
}

type GivingTree struct {
	Unknown1 uint16 `json:"unknown_1"`
	Unknown2 uint32 `json:"unknown_2"`
}

type SteamOrgan struct {
	InstrumentType uint8  `json:"instrument_type"`
	Note           uint32 `json:"note"`
}

type SilkWorm struct {
	Type         uint8         `json:"type"`
	Name         string        `json:"name"`
	Age          uint32        `json:"age"`
	Unknown1     uint32        `json:"unknown_1"`
	Unknown2     uint32        `json:"unknown_2"`
	CanBeFed     uint8         `json:"can_be_fed"`
	Color        SilkWormColor `json:"color"`
	SickDuration uint32        `json:"sick_duration"`
}

// SilkWormColor unpacks the worm's ARGB color word.
type SilkWormColor struct {
	A uint8 `json:"a"`
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

type SewingMachine struct {
	BoltIDList []uint32 `json:"bolt_id_list"`
}

type CountryFlag struct {
	Country string `json:"country"`
}

type LobsterTrap struct{}

type PaintingEasel struct {
	ItemID uint32 `json:"item_id"`
	Label  string `json:"label"`
}

type PetBattleCage struct {
	Label        string `json:"label"`
	BasePet      uint32 `json:"base_pet"`
	CombinedPet1 uint32 `json:"combined_pet_1"`
	CombinedPet2 uint32 `json:"combined_pet_2"`
}

type PetTrainer struct {
	Name          string   `json:"name"`
	PetTotalCount uint32   `json:"pet_total_count"`
	Unknown1      uint32   `json:"unknown_1"`
	PetIDs        []uint32 `json:"pet_ids"`
}

type SteamEngine struct {
	Temperature uint32 `json:"temperature"`
}

type LockBot struct {
	TimePassed uint32 `json:"time_passed"`
}

type WeatherMachine struct {
	Settings uint32 `json:"settings"`
}

type SpiritStorageUnit struct {
	GhostJarCount uint32 `json:"ghost_jar_count"`
}

type DataBedrock struct {
	Unknown1 [21]byte `json:"unknown_1"`
}

type Shelf struct {
	TopLeftItemID     uint32 `json:"top_left_item_id"`
	TopRightItemID    uint32 `json:"top_right_item_id"`
	BottomLeftItemID  uint32 `json:"bottom_left_item_id"`
	BottomRightItemID uint32 `json:"bottom_right_item_id"`
}

type VipEntrance struct {
	Unknown1   uint8    `json:"unknown_1"`
	OwnerUID   uint32   `json:"owner_uid"`
	AccessUIDs []uint32 `json:"access_uids"`
}

type ChallengeTimer struct{}

type FishWallMount struct {
	Label  string `json:"label"`
	ItemID uint32 `json:"item_id"`
	Lb     uint8  `json:"lb"`
}

type Portrait struct {
	Label    string `json:"label"`
	Unknown1 uint32 `json:"unknown_1"`
	Unknown2 uint32 `json:"unknown_2"`
	Unknown3 uint32 `json:"unknown_3"`
	Unknown4 uint32 `json:"unknown_4"`
	Face     uint32 `json:"face"`
	Hat      uint32 `json:"hat"`
	Hair     uint32 `json:"hair"`
	Unknown5 uint16 `json:"unknown_5"`
	Unknown6 uint16 `json:"unknown_6"`
}

type GuildWeatherMachine struct {
	Unknown1 uint32 `json:"unknown_1"`
	Gravity  uint32 `json:"gravity"`
	Flags    uint8  `json:"flags"`
}

type FossilPrepStation struct {
	Unknown1 uint32 `json:"unknown_1"`
}

type DnaExtractor struct{}

type Howler struct{}

type ChemsynthTank struct {
	CurrentChem uint32 `json:"current_chem"`
	TargetChem  uint32 `json:"target_chem"`
}

// StorageBlock records are 13 bytes each with interstitial bytes of unknown
// meaning; Tail keeps any remainder when the declared length is not a
// multiple of the record size.
type StorageBlock struct {
	Items []StorageItem `json:"items"`
	Tail  []byte        `json:"tail,omitempty"`
}

type StorageItem struct {
	Unknown1 [3]byte `json:"unknown_1"`
	ID       uint32  `json:"id"`
	Unknown2 [2]byte `json:"unknown_2"`
	Amount   uint32  `json:"amount"`
}

type CookingOven struct {
	TemperatureLevel uint32           `json:"temperature_level"`
	Ingredients      []OvenIngredient `json:"ingredients"`
	Unknown1         uint32           `json:"unknown_1"`
	Unknown2         uint32           `json:"unknown_2"`
	Unknown3         uint32           `json:"unknown_3"`
}

type OvenIngredient struct {
	ItemID    uint32 `json:"item_id"`
	TimeAdded uint32 `json:"time_added"`
}

type AudioRack struct {
	Note   string `json:"note"`
	Volume uint32 `json:"volume"`
}

type GeigerCharger struct {
	Unknown1 uint32 `json:"unknown_1"`
}

type AdventureBegins struct{}

type TombRobber struct{}

type BalloonOMatic struct {
	TotalRarity uint32 `json:"total_rarity"`
	TeamType    uint8  `json:"team_type"`
}

type TrainingPort struct {
	FishLb       uint32 `json:"fish_lb"`
	FishStatus   uint16 `json:"fish_status"`
	FishID       uint32 `json:"fish_id"`
	FishTotalExp uint32 `json:"fish_total_exp"`
	FishLevel    uint32 `json:"fish_level"`
	Unknown2     uint32 `json:"unknown_2"`
}

type ItemSucker struct {
	ItemIDToSuck uint32 `json:"item_id_to_suck"`
	ItemAmount   uint32 `json:"item_amount"`
	Flags        uint16 `json:"flags"`
	Limit        uint32 `json:"limit"`
}

type CyBot struct {
	SyncTimer uint32         `json:"sync_timer"`
	Activated uint32         `json:"activated"`
	Commands  []CyBotCommand `json:"commands"`
}

type CyBotCommand struct {
	CommandID uint32  `json:"command_id"`
	IsUsed    uint32  `json:"is_used"`
	Unknown1  [7]byte `json:"unknown_1"`
}

type GuildItem struct {
	Unknown1 [17]byte `json:"unknown_1"`
}

type Growscan struct {
	Unknown1 uint8 `json:"unknown_1"`
}

type ContainmentFieldPowerNode struct {
	GhostJarCount uint32   `json:"ghost_jar_count"`
	Unknown1      []uint32 `json:"unknown_1"`
}

type SpiritBoard struct {
	Unknown1 uint32 `json:"unknown_1"`
	Unknown2 uint32 `json:"unknown_2"`
	Unknown3 uint32 `json:"unknown_3"`
}

type StormyCloud struct {
	StingDuration    uint32 `json:"sting_duration"`
	IsSolid          uint32 `json:"is_solid"`
	NonSolidDuration uint32 `json:"non_solid_duration"`
}

type TemporaryPlatform struct {
	Unknown1 uint32 `json:"unknown_1"`
}

type SafeVault struct{}

type AngelicCountingCloud struct {
	IsRaffling uint32 `json:"is_raffling"`
	Unknown1   uint16 `json:"unknown_1"`
	AsciiCode  uint8  `json:"ascii_code"`
}

type InfinityWeatherMachine struct {
	IntervalMinutes uint32   `json:"interval_minutes"`
	WeatherMachines []uint32 `json:"weather_machines"`
}

type PineappleGuzzler struct{}

type KrakenGalacticBlock struct {
	PatternIndex uint8  `json:"pattern_index"`
	Unknown1     uint32 `json:"unknown_1"`
	R            uint8  `json:"r"`
	G            uint8  `json:"g"`
	B            uint8  `json:"b"`
}

type FriendsEntrance struct {
	OwnerUserID uint32 `json:"owner_user_id"`
	Unknown1    uint16 `json:"unknown_1"`
	Unknown2    uint16 `json:"unknown_2"`
}

func (*Door) Category() item.Category                      { return item.CategoryDoor }
func (*Sign) Category() item.Category                      { return item.CategorySign }
func (*Lock) Category() item.Category                      { return item.CategoryLock }
func (*Seed) Category() item.Category                      { return item.CategorySeed }
func (*Mailbox) Category() item.Category                   { return item.CategoryMailbox }
func (*Bulletin) Category() item.Category                  { return item.CategoryBulletin }
func (*Dice) Category() item.Category                      { return item.CategoryDice }
func (*ChemicalSource) Category() item.Category            { return item.CategoryChemicalSource }
func (*AchievementBlock) Category() item.Category          { return item.CategoryAchievementBlock }
func (*HeartMonitor) Category() item.Category              { return item.CategoryHeartMonitor }
func (*DonationBox) Category() item.Category               { return item.CategoryDonationBox }
func (*Mannequin) Category() item.Category                 { return item.CategoryMannequin }
func (*BunnyEgg) Category() item.Category                  { return item.CategoryBunnyEgg }
func (*GamePack) Category() item.Category                  { return item.CategoryGamePack }
func (*GameGenerator) Category() item.Category             { return item.CategoryGameGenerator }
func (*XenoniteCrystal) Category() item.Category           { return item.CategoryXenoniteCrystal }
func (*PhoneBooth) Category() item.Category                { return item.CategoryPhoneBooth }
func (*Crystal) Category() item.Category                   { return item.CategoryCrystal }
func (*CrimeInProgress) Category() item.Category           { return item.CategoryCrimeInProgress }
func (*Spotlight) Category() item.Category                 { return item.CategorySpotlight }
func (*DisplayBlock) Category() item.Category              { return item.CategoryDisplayBlock }
func (*VendingMachine) Category() item.Category            { return item.CategoryVendingMachine }
func (*FishTankPort) Category() item.Category              { return item.CategoryFishTankPort }
func (*SolarCollector) Category() item.Category            { return item.CategorySolarCollector }
func (*Forge) Category() item.Category                     { return item.CategoryForge }
func (*GivingTree) Category() item.Category                { return item.CategoryGivingTree }
func (*SteamOrgan) Category() item.Category                { return item.CategorySteamOrgan }
func (*SilkWorm) Category() item.Category                  { return item.CategorySilkWorm }
func (*SewingMachine) Category() item.Category             { return item.CategorySewingMachine }
func (*CountryFlag) Category() item.Category               { return item.CategoryCountryFlag }
func (*LobsterTrap) Category() item.Category               { return item.CategoryLobsterTrap }
func (*PaintingEasel) Category() item.Category             { return item.CategoryPaintingEasel }
func (*PetBattleCage) Category() item.Category             { return item.CategoryPetBattleCage }
func (*PetTrainer) Category() item.Category                { return item.CategoryPetTrainer }
func (*SteamEngine) Category() item.Category               { return item.CategorySteamEngine }
func (*LockBot) Category() item.Category                   { return item.CategoryLockBot }
func (*WeatherMachine) Category() item.Category            { return item.CategoryWeatherMachine }
func (*SpiritStorageUnit) Category() item.Category         { return item.CategorySpiritStorageUnit }
func (*DataBedrock) Category() item.Category               { return item.CategoryDataBedrock }
func (*Shelf) Category() item.Category                     { return item.CategoryShelf }
func (*VipEntrance) Category() item.Category               { return item.CategoryVipEntrance }
func (*ChallengeTimer) Category() item.Category            { return item.CategoryChallengeTimer }
func (*FishWallMount) Category() item.Category             { return item.CategoryFishWallMount }
func (*Portrait) Category() item.Category                  { return item.CategoryPortrait }
func (*GuildWeatherMachine) Category() item.Category       { return item.CategoryGuildWeatherMachine }
func (*FossilPrepStation) Category() item.Category         { return item.CategoryFossilPrepStation }
func (*DnaExtractor) Category() item.Category              { return item.CategoryDnaExtractor }
func (*Howler) Category() item.Category                    { return item.CategoryHowler }
func (*ChemsynthTank) Category() item.Category             { return item.CategoryChemsynthTank }
func (*StorageBlock) Category() item.Category              { return item.CategoryStorageBlock }
func (*CookingOven) Category() item.Category               { return item.CategoryCookingOven }
func (*AudioRack) Category() item.Category                 { return item.CategoryAudioRack }
func (*GeigerCharger) Category() item.Category             { return item.CategoryGeigerCharger }
func (*AdventureBegins) Category() item.Category           { return item.CategoryAdventureBegins }
func (*TombRobber) Category() item.Category                { return item.CategoryTombRobber }
func (*BalloonOMatic) Category() item.Category             { return item.CategoryBalloonOMatic }
func (*TrainingPort) Category() item.Category              { return item.CategoryTrainingPort }
func (*ItemSucker) Category() item.Category                { return item.CategoryItemSucker }
func (*CyBot) Category() item.Category                     { return item.CategoryCyBot }
func (*GuildItem) Category() item.Category                 { return item.CategoryGuildItem }
func (*Growscan) Category() item.Category                  { return item.CategoryGrowscan }
func (*ContainmentFieldPowerNode) Category() item.Category { return item.CategoryContainmentFieldPowerNode }
func (*SpiritBoard) Category() item.Category               { return item.CategorySpiritBoard }
func (*StormyCloud) Category() item.Category               { return item.CategoryStormyCloud }
func (*TemporaryPlatform) Category() item.Category         { return item.CategoryTemporaryPlatform }
func (*SafeVault) Category() item.Category                 { return item.CategorySafeVault }
func (*AngelicCountingCloud) Category() item.Category      { return item.CategoryAngelicCountingCloud }
func (*InfinityWeatherMachine) Category() item.Category    { return item.CategoryInfinityWeatherMachine }
func (*PineappleGuzzler) Category() item.Category          { return item.CategoryPineappleGuzzler }
func (*KrakenGalacticBlock) Category() item.Category       { return item.CategoryKrakenGalacticBlock }
func (*FriendsEntrance) Category() item.Category           { return item.CategoryFriendsEntrance }
