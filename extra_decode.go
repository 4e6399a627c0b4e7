package gtworld

import (
	"fmt"

	"github.com/gtworld/gtworld/item"
	"github.com/gtworld/gtworld/wire"
)

// fieldReader wraps the cursor with a sticky error so multi-field payloads
// read as a flat field list. After the first failure every read returns the
// zero value and the error is reported once at the end.
type fieldReader struct {
	r   *wire.Reader
	err error
}

func (f *fieldReader) u8() uint8 {
	if f.err != nil {
		return 0
	}
	v, err := f.r.U8()
	f.err = err
	return v
}

func (f *fieldReader) u16() uint16 {
	if f.err != nil {
		return 0
	}
	v, err := f.r.U16()
	f.err = err
	return v
}

func (f *fieldReader) u32() uint32 {
	if f.err != nil {
		return 0
	}
	v, err := f.r.U32()
	f.err = err
	return v
}

func (f *fieldReader) i32() int32 {
	if f.err != nil {
		return 0
	}
	v, err := f.r.I32()
	f.err = err
	return v
}

func (f *fieldReader) f32() float32 {
	if f.err != nil {
		return 0
	}
	v, err := f.r.F32()
	f.err = err
	return v
}

func (f *fieldReader) str16() string {
	if f.err != nil {
		return ""
	}
	v, err := f.r.Str16()
	f.err = err
	return v
}

func (f *fieldReader) bytes(dst []byte) {
	if f.err != nil {
		return
	}
	b, err := f.r.Bytes(len(dst))
	if err != nil {
		f.err = err
		return
	}
	copy(dst, b)
}

func (f *fieldReader) byteSlice(n int) []byte {
	if f.err != nil {
		return nil
	}
	b, err := f.r.Bytes(n)
	f.err = err
	return b
}

// elems validates a wire count against the bytes actually remaining before
// anything is allocated, so a corrupt count fails as a truncation instead of
// an absurd allocation.
func (f *fieldReader) elems(n uint32, elemSize int) int {
	if f.err != nil {
		return 0
	}
	if int64(n)*int64(elemSize) > int64(f.r.Remaining()) {
		f.err = fmt.Errorf("%w: %d elements of %d bytes declared at offset %d, %d bytes remain",
			wire.ErrTruncated, n, elemSize, f.r.Pos(), f.r.Remaining())
		return 0
	}
	return int(n)
}

func decodeDoor(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &Door{
		Text:     f.str16(),
		Unknown1: f.u8(),
	}
	return e, f.err
}

func decodeSign(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &Sign{
		Text:     f.str16(),
		Unknown1: f.u32(),
	}
	return e, f.err
}

func decodeLock(r *wire.Reader, t *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &Lock{
		Settings:    f.u8(),
		OwnerUID:    f.u32(),
		AccessCount: f.u32(),
	}
	n := f.elems(e.AccessCount, 4)
	e.AccessUIDs = make([]uint32, 0, n)
	for i := 0; i < n && f.err == nil; i++ {
		e.AccessUIDs = append(e.AccessUIDs, f.u32())
	}
	e.MinimumLevel = f.u8()
	f.bytes(e.Unknown1[:])
	if t.ForegroundItemID == guildLockItemID {
		e.GuildData = f.byteSlice(16)
	}
	return e, f.err
}

func decodeSeed(r *wire.Reader, _ *Tile, meta *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &Seed{
		TimePassed: f.u32(),
		ItemOnTree: f.u8(),
	}
	e.ReadyToHarvest = f.err == nil && e.TimePassed >= meta.GrowTime
	return e, f.err
}

func decodeMailbox(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &Mailbox{
		Unknown1: f.str16(),
		Unknown2: f.str16(),
		Unknown3: f.str16(),
		Unknown4: f.u8(),
	}
	return e, f.err
}

func decodeBulletin(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &Bulletin{
		Unknown1: f.str16(),
		Unknown2: f.str16(),
		Unknown3: f.str16(),
		Unknown4: f.u8(),
	}
	return e, f.err
}

func decodeDice(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &Dice{Symbol: f.u8()}
	return e, f.err
}

func decodeChemicalSource(r *wire.Reader, _ *Tile, meta *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &ChemicalSource{TimePassed: f.u32()}
	e.ReadyToHarvest = f.err == nil && e.TimePassed >= meta.GrowTime
	return e, f.err
}

func decodeAchievementBlock(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &AchievementBlock{
		Unknown1: f.u32(),
		TileType: f.u8(),
	}
	return e, f.err
}

func decodeHeartMonitor(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &HeartMonitor{
		Unknown1:   f.u32(),
		PlayerName: f.str16(),
	}
	return e, f.err
}

func decodeDonationBox(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &DonationBox{
		Unknown1: f.str16(),
		Unknown2: f.str16(),
		Unknown3: f.str16(),
		Unknown4: f.u8(),
	}
	return e, f.err
}

func decodeMannequin(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &Mannequin{
		Text:       f.str16(),
		Unknown1:   f.u8(),
		Clothing1:  f.u32(),
		Clothing2:  f.u16(),
		Clothing3:  f.u16(),
		Clothing4:  f.u16(),
		Clothing5:  f.u16(),
		Clothing6:  f.u16(),
		Clothing7:  f.u16(),
		Clothing8:  f.u16(),
		Clothing9:  f.u16(),
		Clothing10: f.u16(),
	}
	return e, f.err
}

func decodeBunnyEgg(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &BunnyEgg{EggPlaced: f.u32()}
	return e, f.err
}

func decodeGamePack(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &GamePack{Team: f.u8()}
	return e, f.err
}

func decodeGameGenerator(*wire.Reader, *Tile, *item.Meta) (TileExtra, error) {
	return &GameGenerator{}, nil
}

func decodeXenoniteCrystal(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &XenoniteCrystal{
		Unknown1: f.u8(),
		Unknown2: f.u32(),
	}
	return e, f.err
}

func decodePhoneBooth(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &PhoneBooth{
		Clothing1: f.u16(),
		Clothing2: f.u16(),
		Clothing3: f.u16(),
		Clothing4: f.u16(),
		Clothing5: f.u16(),
		Clothing6: f.u16(),
		Clothing7: f.u16(),
		Clothing8: f.u16(),
		Clothing9: f.u16(),
	}
	return e, f.err
}

func decodeCrystal(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &Crystal{Unknown1: f.str16()}
	return e, f.err
}

func decodeCrimeInProgress(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &CrimeInProgress{
		Unknown1: f.str16(),
		Unknown2: f.u32(),
		Unknown3: f.u8(),
	}
	return e, f.err
}

func decodeSpotlight(*wire.Reader, *Tile, *item.Meta) (TileExtra, error) {
	return &Spotlight{}, nil
}

func decodeDisplayBlock(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &DisplayBlock{ItemID: f.u32()}
	return e, f.err
}

func decodeVendingMachine(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &VendingMachine{
		ItemID: f.u32(),
		Price:  f.i32(),
	}
	return e, f.err
}

func decodeFishTankPort(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &FishTankPort{
		Flags:     f.u8(),
		FishCount: f.u32(),
	}
	// The wire count is in half-records.
	n := f.elems(e.FishCount/2, 8)
	e.Fishes = make([]FishInfo, 0, n)
	for i := 0; i < n && f.err == nil; i++ {
		e.Fishes = append(e.Fishes, FishInfo{
			FishItemID: f.u32(),
			Lbs:        f.u32(),
		})
	}
	return e, f.err
}

func decodeSolarCollector(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &SolarCollector{}
	f.bytes(e.Unknown1[:])
	return e, f.err
}

func decodeForge(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &Forge{Temperature: f.u32()}
	return e, f.err
}

func decodeGivingTree(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &GivingTree{
		Unknown1: f.u16(),
		Unknown2: f.u32(),
	}
	return e, f.err
}

func decodeSteamOrgan(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &SteamOrgan{
		InstrumentType: f.u8(),
		Note:           f.u32(),
	}
	return e, f.err
}

func decodeSilkWorm(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &SilkWorm{
		Type:     f.u8(),
		Name:     f.str16(),
		Age:      f.u32(),
		Unknown1: f.u32(),
		Unknown2: f.u32(),
		CanBeFed: f.u8(),
	}
	color := f.u32()
	e.Color = SilkWormColor{
		A: uint8(color >> 24),
		R: uint8(color >> 16),
		G: uint8(color >> 8),
		B: uint8(color),
	}
	e.SickDuration = f.u32()
	return e, f.err
}

func decodeSewingMachine(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	count := f.u16()
	n := f.elems(uint32(count), 4)
	e := &SewingMachine{BoltIDList: make([]uint32, 0, n)}
	for i := 0; i < n && f.err == nil; i++ {
		e.BoltIDList = append(e.BoltIDList, f.u32())
	}
	return e, f.err
}

func decodeCountryFlag(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &CountryFlag{Country: f.str16()}
	return e, f.err
}

func decodeLobsterTrap(*wire.Reader, *Tile, *item.Meta) (TileExtra, error) {
	return &LobsterTrap{}, nil
}

func decodePaintingEasel(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &PaintingEasel{
		ItemID: f.u32(),
		Label:  f.str16(),
	}
	return e, f.err
}

func decodePetBattleCage(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &PetBattleCage{
		Label:        f.str16(),
		BasePet:      f.u32(),
		CombinedPet1: f.u32(),
		CombinedPet2: f.u32(),
	}
	return e, f.err
}

func decodePetTrainer(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &PetTrainer{
		Name:          f.str16(),
		PetTotalCount: f.u32(),
		Unknown1:      f.u32(),
	}
	n := f.elems(e.PetTotalCount, 4)
	e.PetIDs = make([]uint32, 0, n)
	for i := 0; i < n && f.err == nil; i++ {
		e.PetIDs = append(e.PetIDs, f.u32())
	}
	return e, f.err
}

func decodeSteamEngine(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &SteamEngine{Temperature: f.u32()}
	return e, f.err
}

func decodeLockBot(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &LockBot{TimePassed: f.u32()}
	return e, f.err
}

func decodeWeatherMachine(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &WeatherMachine{Settings: f.u32()}
	return e, f.err
}

func decodeSpiritStorageUnit(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &SpiritStorageUnit{GhostJarCount: f.u32()}
	return e, f.err
}

func decodeDataBedrock(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &DataBedrock{}
	f.bytes(e.Unknown1[:])
	return e, f.err
}

func decodeShelf(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &Shelf{
		TopLeftItemID:     f.u32(),
		TopRightItemID:    f.u32(),
		BottomLeftItemID:  f.u32(),
		BottomRightItemID: f.u32(),
	}
	return e, f.err
}

func decodeVipEntrance(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &VipEntrance{
		Unknown1: f.u8(),
		OwnerUID: f.u32(),
	}
	count := f.u32()
	n := f.elems(count, 4)
	e.AccessUIDs = make([]uint32, 0, n)
	for i := 0; i < n && f.err == nil; i++ {
		e.AccessUIDs = append(e.AccessUIDs, f.u32())
	}
	return e, f.err
}

func decodeChallengeTimer(*wire.Reader, *Tile, *item.Meta) (TileExtra, error) {
	return &ChallengeTimer{}, nil
}

func decodeFishWallMount(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &FishWallMount{
		Label:  f.str16(),
		ItemID: f.u32(),
		Lb:     f.u8(),
	}
	return e, f.err
}

func decodePortrait(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &Portrait{
		Label:    f.str16(),
		Unknown1: f.u32(),
		Unknown2: f.u32(),
		Unknown3: f.u32(),
		Unknown4: f.u32(),
		Face:     f.u32(),
		Hat:      f.u32(),
		Hair:     f.u32(),
		Unknown5: f.u16(),
		Unknown6: f.u16(),
	}
	return e, f.err
}

func decodeGuildWeatherMachine(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &GuildWeatherMachine{
		Unknown1: f.u32(),
		Gravity:  f.u32(),
		Flags:    f.u8(),
	}
	return e, f.err
}

func decodeFossilPrepStation(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &FossilPrepStation{Unknown1: f.u32()}
	return e, f.err
}

func decodeDnaExtractor(*wire.Reader, *Tile, *item.Meta) (TileExtra, error) {
	return &DnaExtractor{}, nil
}

func decodeHowler(*wire.Reader, *Tile, *item.Meta) (TileExtra, error) {
	return &Howler{}, nil
}

func decodeChemsynthTank(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &ChemsynthTank{
		CurrentChem: f.u32(),
		TargetChem:  f.u32(),
	}
	return e, f.err
}

func decodeStorageBlock(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	dataLen := f.u16()
	n := f.elems(uint32(dataLen)/13, 13)
	e := &StorageBlock{Items: make([]StorageItem, 0, n)}
	for i := 0; i < n && f.err == nil; i++ {
		var it StorageItem
		f.bytes(it.Unknown1[:])
		it.ID = f.u32()
		f.bytes(it.Unknown2[:])
		it.Amount = f.u32()
		e.Items = append(e.Items, it)
	}
	if rem := int(dataLen) % 13; rem != 0 {
		e.Tail = f.byteSlice(rem)
	}
	return e, f.err
}

func decodeCookingOven(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &CookingOven{TemperatureLevel: f.u32()}
	count := f.u32()
	n := f.elems(count, 8)
	e.Ingredients = make([]OvenIngredient, 0, n)
	for i := 0; i < n && f.err == nil; i++ {
		e.Ingredients = append(e.Ingredients, OvenIngredient{
			ItemID:    f.u32(),
			TimeAdded: f.u32(),
		})
	}
	e.Unknown1 = f.u32()
	e.Unknown2 = f.u32()
	e.Unknown3 = f.u32()
	return e, f.err
}

func decodeAudioRack(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &AudioRack{
		Note:   f.str16(),
		Volume: f.u32(),
	}
	return e, f.err
}

func decodeGeigerCharger(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &GeigerCharger{Unknown1: f.u32()}
	return e, f.err
}

func decodeAdventureBegins(*wire.Reader, *Tile, *item.Meta) (TileExtra, error) {
	return &AdventureBegins{}, nil
}

func decodeTombRobber(*wire.Reader, *Tile, *item.Meta) (TileExtra, error) {
	return &TombRobber{}, nil
}

func decodeBalloonOMatic(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &BalloonOMatic{
		TotalRarity: f.u32(),
		TeamType:    f.u8(),
	}
	return e, f.err
}

func decodeTrainingPort(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &TrainingPort{
		FishLb:       f.u32(),
		FishStatus:   f.u16(),
		FishID:       f.u32(),
		FishTotalExp: f.u32(),
		FishLevel:    f.u32(),
		Unknown2:     f.u32(),
	}
	return e, f.err
}

func decodeItemSucker(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &ItemSucker{
		ItemIDToSuck: f.u32(),
		ItemAmount:   f.u32(),
		Flags:        f.u16(),
		Limit:        f.u32(),
	}
	return e, f.err
}

func decodeCyBot(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &CyBot{
		SyncTimer: f.u32(),
		Activated: f.u32(),
	}
	count := f.u32()
	n := f.elems(count, 15)
	e.Commands = make([]CyBotCommand, 0, n)
	for i := 0; i < n && f.err == nil; i++ {
		var c CyBotCommand
		c.CommandID = f.u32()
		c.IsUsed = f.u32()
		f.bytes(c.Unknown1[:])
		e.Commands = append(e.Commands, c)
	}
	return e, f.err
}

func decodeGuildItem(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &GuildItem{}
	f.bytes(e.Unknown1[:])
	return e, f.err
}

func decodeGrowscan(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &Growscan{Unknown1: f.u8()}
	return e, f.err
}

func decodeContainmentFieldPowerNode(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &ContainmentFieldPowerNode{GhostJarCount: f.u32()}
	count := f.u32()
	n := f.elems(count, 4)
	e.Unknown1 = make([]uint32, 0, n)
	for i := 0; i < n && f.err == nil; i++ {
		e.Unknown1 = append(e.Unknown1, f.u32())
	}
	return e, f.err
}

func decodeSpiritBoard(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &SpiritBoard{
		Unknown1: f.u32(),
		Unknown2: f.u32(),
		Unknown3: f.u32(),
	}
	return e, f.err
}

func decodeStormyCloud(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &StormyCloud{
		StingDuration:    f.u32(),
		IsSolid:          f.u32(),
		NonSolidDuration: f.u32(),
	}
	return e, f.err
}

func decodeTemporaryPlatform(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &TemporaryPlatform{Unknown1: f.u32()}
	return e, f.err
}

func decodeSafeVault(*wire.Reader, *Tile, *item.Meta) (TileExtra, error) {
	return &SafeVault{}, nil
}

func decodeAngelicCountingCloud(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &AngelicCountingCloud{
		IsRaffling: f.u32(),
		Unknown1:   f.u16(),
		AsciiCode:  f.u8(),
	}
	return e, f.err
}

func decodeInfinityWeatherMachine(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &InfinityWeatherMachine{IntervalMinutes: f.u32()}
	count := f.u32()
	n := f.elems(count, 4)
	e.WeatherMachines = make([]uint32, 0, n)
	for i := 0; i < n && f.err == nil; i++ {
		e.WeatherMachines = append(e.WeatherMachines, f.u32())
	}
	return e, f.err
}

func decodePineappleGuzzler(*wire.Reader, *Tile, *item.Meta) (TileExtra, error) {
	return &PineappleGuzzler{}, nil
}

func decodeKrakenGalacticBlock(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &KrakenGalacticBlock{
		PatternIndex: f.u8(),
		Unknown1:     f.u32(),
		R:            f.u8(),
		G:            f.u8(),
		B:            f.u8(),
	}
	return e, f.err
}

func decodeFriendsEntrance(r *wire.Reader, _ *Tile, _ *item.Meta) (TileExtra, error) {
	f := &fieldReader{r: r}
	e := &FriendsEntrance{
		OwnerUserID: f.u32(),
		Unknown1:    f.u16(),
		Unknown2:    f.u16(),
	}
	return e, f.err
}
