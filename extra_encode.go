package gtworld

import "github.com/gtworld/gtworld/wire"

// Payload encoders. Each mirrors its decoder field for field; wire counts
// that were carried verbatim (Lock.AccessCount, FishTankPort.FishCount,
// PetTrainer.PetTotalCount) are re-emitted from the stored value, the rest
// are derived from slice lengths.

func (e *Door) encodeTo(w *wire.Writer) {
	w.PutStr16(e.Text)
	w.PutU8(e.Unknown1)
}

func (e *Sign) encodeTo(w *wire.Writer) {
	w.PutStr16(e.Text)
	w.PutU32(e.Unknown1)
}

func (e *Lock) encodeTo(w *wire.Writer) {
	w.PutU8(e.Settings)
	w.PutU32(e.OwnerUID)
	w.PutU32(e.AccessCount)
	for _, uid := range e.AccessUIDs {
		w.PutU32(uid)
	}
	w.PutU8(e.MinimumLevel)
	w.PutBytes(e.Unknown1[:])
	w.PutBytes(e.GuildData)
}

func (e *Seed) encodeTo(w *wire.Writer) {
	w.PutU32(e.TimePassed)
	w.PutU8(e.ItemOnTree)
}

func (e *Mailbox) encodeTo(w *wire.Writer) {
	w.PutStr16(e.Unknown1)
	w.PutStr16(e.Unknown2)
	w.PutStr16(e.Unknown3)
	w.PutU8(e.Unknown4)
}

func (e *Bulletin) encodeTo(w *wire.Writer) {
	w.PutStr16(e.Unknown1)
	w.PutStr16(e.Unknown2)
	w.PutStr16(e.Unknown3)
	w.PutU8(e.Unknown4)
}

func (e *Dice) encodeTo(w *wire.Writer) {
	w.PutU8(e.Symbol)
}

func (e *ChemicalSource) encodeTo(w *wire.Writer) {
	w.PutU32(e.TimePassed)
}

func (e *AchievementBlock) encodeTo(w *wire.Writer) {
	w.PutU32(e.Unknown1)
	w.PutU8(e.TileType)
}

func (e *HeartMonitor) encodeTo(w *wire.Writer) {
	w.PutU32(e.Unknown1)
	w.PutStr16(e.PlayerName)
}

func (e *DonationBox) encodeTo(w *wire.Writer) {
	w.PutStr16(e.Unknown1)
	w.PutStr16(e.Unknown2)
	w.PutStr16(e.Unknown3)
	w.PutU8(e.Unknown4)
}

func (e *Mannequin) encodeTo(w *wire.Writer) {
	w.PutStr16(e.Text)
	w.PutU8(e.Unknown1)
	w.PutU32(e.Clothing1)
	w.PutU16(e.Clothing2)
	w.PutU16(e.Clothing3)
	w.PutU16(e.Clothing4)
	w.PutU16(e.Clothing5)
	w.PutU16(e.Clothing6)
	w.PutU16(e.Clothing7)
	w.PutU16(e.Clothing8)
	w.PutU16(e.Clothing9)
	w.PutU16(e.Clothing10)
}

func (e *BunnyEgg) encodeTo(w *wire.Writer) {
	w.PutU32(e.EggPlaced)
}

func (e *GamePack) encodeTo(w *wire.Writer) {
	w.PutU8(e.Team)
}

func (*GameGenerator) encodeTo(*wire.Writer) {}

func (e *XenoniteCrystal) encodeTo(w *wire.Writer) {
	w.PutU8(e.Unknown1)
	w.PutU32(e.Unknown2)
}

func (e *PhoneBooth) encodeTo(w *wire.Writer) {
	w.PutU16(e.Clothing1)
	w.PutU16(e.Clothing2)
	w.PutU16(e.Clothing3)
	w.PutU16(e.Clothing4)
	w.PutU16(e.Clothing5)
	w.PutU16(e.Clothing6)
	w.PutU16(e.Clothing7)
	w.PutU16(e.Clothing8)
	w.PutU16(e.Clothing9)
}

func (e *Crystal) encodeTo(w *wire.Writer) {
	w.PutStr16(e.Unknown1)
}

func (e *CrimeInProgress) encodeTo(w *wire.Writer) {
	w.PutStr16(e.Unknown1)
	w.PutU32(e.Unknown2)
	w.PutU8(e.Unknown3)
}

func (*Spotlight) encodeTo(*wire.Writer) {}

func (e *DisplayBlock) encodeTo(w *wire.Writer) {
	w.PutU32(e.ItemID)
}

func (e *VendingMachine) encodeTo(w *wire.Writer) {
	w.PutU32(e.ItemID)
	w.PutI32(e.Price)
}

func (e *FishTankPort) encodeTo(w *wire.Writer) {
	w.PutU8(e.Flags)
	w.PutU32(e.FishCount)
	for _, fish := range e.Fishes {
		w.PutU32(fish.FishItemID)
		w.PutU32(fish.Lbs)
	}
}

func (e *SolarCollector) encodeTo(w *wire.Writer) {
	w.PutBytes(e.Unknown1[:])
}

func (e *Forge) encodeTo(w *wire.Writer) {
	w.PutU32(e.Temperature)
}

func (e *GivingTree) encodeTo(w *wire.Writer) {
	w.PutU16(e.Unknown1)
	w.PutU32(e.Unknown2)
}

func (e *SteamOrgan) encodeTo(w *wire.Writer) {
	w.PutU8(e.InstrumentType)
	w.PutU32(e.Note)
}

func (e *SilkWorm) encodeTo(w *wire.Writer) {
	w.PutU8(e.Type)
	w.PutStr16(e.Name)
	w.PutU32(e.Age)
	w.PutU32(e.Unknown1)
	w.PutU32(e.Unknown2)
	w.PutU8(e.CanBeFed)
	color := uint32(e.Color.A)<<24 | uint32(e.Color.R)<<16 | uint32(e.Color.G)<<8 | uint32(e.Color.B)
	w.PutU32(color)
	w.PutU32(e.SickDuration)
}

func (e *SewingMachine) encodeTo(w *wire.Writer) {
	w.PutU16(uint16(len(e.BoltIDList)))
	for _, id := range e.BoltIDList {
		w.PutU32(id)
	}
}

func (e *CountryFlag) encodeTo(w *wire.Writer) {
	w.PutStr16(e.Country)
}

func (*LobsterTrap) encodeTo(*wire.Writer) {}

func (e *PaintingEasel) encodeTo(w *wire.Writer) {
	w.PutU32(e.ItemID)
	w.PutStr16(e.Label)
}

func (e *PetBattleCage) encodeTo(w *wire.Writer) {
	w.PutStr16(e.Label)
	w.PutU32(e.BasePet)
	w.PutU32(e.CombinedPet1)
	w.PutU32(e.CombinedPet2)
}

func (e *PetTrainer) encodeTo(w *wire.Writer) {
	w.PutStr16(e.Name)
	w.PutU32(e.PetTotalCount)
	w.PutU32(e.Unknown1)
	for _, id := range e.PetIDs {
		w.PutU32(id)
	}
}

func (e *SteamEngine) encodeTo(w *wire.Writer) {
	w.PutU32(e.Temperature)
}

func (e *LockBot) encodeTo(w *wire.Writer) {
	w.PutU32(e.TimePassed)
}

func (e *WeatherMachine) encodeTo(w *wire.Writer) {
	w.PutU32(e.Settings)
}

func (e *SpiritStorageUnit) encodeTo(w *wire.Writer) {
	w.PutU32(e.GhostJarCount)
}

func (e *DataBedrock) encodeTo(w *wire.Writer) {
	w.PutBytes(e.Unknown1[:])
}

func (e *Shelf) encodeTo(w *wire.Writer) {
	w.PutU32(e.TopLeftItemID)
	w.PutU32(e.TopRightItemID)
	w.PutU32(e.BottomLeftItemID)
	w.PutU32(e.BottomRightItemID)
}

func (e *VipEntrance) encodeTo(w *wire.Writer) {
	w.PutU8(e.Unknown1)
	w.PutU32(e.OwnerUID)
	w.PutU32(uint32(len(e.AccessUIDs)))
	for _, uid := range e.AccessUIDs {
		w.PutU32(uid)
	}
}

func (*ChallengeTimer) encodeTo(*wire.Writer) {}

func (e *FishWallMount) encodeTo(w *wire.Writer) {
	w.PutStr16(e.Label)
	w.PutU32(e.ItemID)
	w.PutU8(e.Lb)
}

func (e *Portrait) encodeTo(w *wire.Writer) {
	w.PutStr16(e.Label)
	w.PutU32(e.Unknown1)
	w.PutU32(e.Unknown2)
	w.PutU32(e.Unknown3)
	w.PutU32(e.Unknown4)
	w.PutU32(e.Face)
	w.PutU32(e.Hat)
	w.PutU32(e.Hair)
	w.PutU16(e.Unknown5)
	w.PutU16(e.Unknown6)
}

func (e *GuildWeatherMachine) encodeTo(w *wire.Writer) {
	w.PutU32(e.Unknown1)
	w.PutU32(e.Gravity)
	w.PutU8(e.Flags)
}

func (e *FossilPrepStation) encodeTo(w *wire.Writer) {
	w.PutU32(e.Unknown1)
}

func (*DnaExtractor) encodeTo(*wire.Writer) {}

func (*Howler) encodeTo(*wire.Writer) {}

func (e *ChemsynthTank) encodeTo(w *wire.Writer) {
	w.PutU32(e.CurrentChem)
	w.PutU32(e.TargetChem)
}

func (e *StorageBlock) encodeTo(w *wire.Writer) {
	w.PutU16(uint16(13*len(e.Items) + len(e.Tail)))
	for _, it := range e.Items {
		w.PutBytes(it.Unknown1[:])
		w.PutU32(it.ID)
		w.PutBytes(it.Unknown2[:])
		w.PutU32(it.Amount)
	}
	w.PutBytes(e.Tail)
}

func (e *CookingOven) encodeTo(w *wire.Writer) {
	w.PutU32(e.TemperatureLevel)
	w.PutU32(uint32(len(e.Ingredients)))
	for _, in := range e.Ingredients {
		w.PutU32(in.ItemID)
		w.PutU32(in.TimeAdded)
	}
	w.PutU32(e.Unknown1)
	w.PutU32(e.Unknown2)
	w.PutU32(e.Unknown3)
}

func (e *AudioRack) encodeTo(w *wire.Writer) {
	w.PutStr16(e.Note)
	w.PutU32(e.Volume)
}

func (e *GeigerCharger) encodeTo(w *wire.Writer) {
	w.PutU32(e.Unknown1)
}

func (*AdventureBegins) encodeTo(*wire.Writer) {}

func (*TombRobber) encodeTo(*wire.Writer) {}

func (e *BalloonOMatic) encodeTo(w *wire.Writer) {
	w.PutU32(e.TotalRarity)
	w.PutU8(e.TeamType)
}

func (e *TrainingPort) encodeTo(w *wire.Writer) {
	w.PutU32(e.FishLb)
	w.PutU16(e.FishStatus)
	w.PutU32(e.FishID)
	w.PutU32(e.FishTotalExp)
	w.PutU32(e.FishLevel)
	w.PutU32(e.Unknown2)
}

func (e *ItemSucker) encodeTo(w *wire.Writer) {
	w.PutU32(e.ItemIDToSuck)
	w.PutU32(e.ItemAmount)
	w.PutU16(e.Flags)
	w.PutU32(e.Limit)
}

func (e *CyBot) encodeTo(w *wire.Writer) {
	w.PutU32(e.SyncTimer)
	w.PutU32(e.Activated)
	w.PutU32(uint32(len(e.Commands)))
	for _, c := range e.Commands {
		w.PutU32(c.CommandID)
		w.PutU32(c.IsUsed)
		w.PutBytes(c.Unknown1[:])
	}
}

func (e *GuildItem) encodeTo(w *wire.Writer) {
	w.PutBytes(e.Unknown1[:])
}

func (e *Growscan) encodeTo(w *wire.Writer) {
	w.PutU8(e.Unknown1)
}

func (e *ContainmentFieldPowerNode) encodeTo(w *wire.Writer) {
	w.PutU32(e.GhostJarCount)
	w.PutU32(uint32(len(e.Unknown1)))
	for _, v := range e.Unknown1 {
		w.PutU32(v)
	}
}

func (e *SpiritBoard) encodeTo(w *wire.Writer) {
	w.PutU32(e.Unknown1)
	w.PutU32(e.Unknown2)
	w.PutU32(e.Unknown3)
}

func (e *StormyCloud) encodeTo(w *wire.Writer) {
	w.PutU32(e.StingDuration)
	w.PutU32(e.IsSolid)
	w.PutU32(e.NonSolidDuration)
}

func (e *TemporaryPlatform) encodeTo(w *wire.Writer) {
	w.PutU32(e.Unknown1)
}

func (*SafeVault) encodeTo(*wire.Writer) {}

func (e *AngelicCountingCloud) encodeTo(w *wire.Writer) {
	w.PutU32(e.IsRaffling)
	w.PutU16(e.Unknown1)
	w.PutU8(e.AsciiCode)
}

func (e *InfinityWeatherMachine) encodeTo(w *wire.Writer) {
	w.PutU32(e.IntervalMinutes)
	w.PutU32(uint32(len(e.WeatherMachines)))
	for _, id := range e.WeatherMachines {
		w.PutU32(id)
	}
}

func (*PineappleGuzzler) encodeTo(*wire.Writer) {}

func (e *KrakenGalacticBlock) encodeTo(w *wire.Writer) {
	w.PutU8(e.PatternIndex)
	w.PutU32(e.Unknown1)
	w.PutU8(e.R)
	w.PutU8(e.G)
	w.PutU8(e.B)
}

func (e *FriendsEntrance) encodeTo(w *wire.Writer) {
	w.PutU32(e.OwnerUserID)
	w.PutU16(e.Unknown1)
	w.PutU16(e.Unknown2)
}
