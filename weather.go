package gtworld

import "fmt"

// WeatherType is a world weather id. The raw value round-trips verbatim;
// String is display-only and unknown ids keep their number.
type WeatherType uint16

const (
	WeatherDefault WeatherType = 0
	WeatherSunset  WeatherType = 1
	WeatherNight   WeatherType = 2
)

var weatherNames = [...]string{
	"Default", "Sunset", "Night", "Desert", "Sunny", "RainyCity", "Harvest",
	"Mars", "Spooky", "Maw", "Blank", "Snowy", "Growch", "GrowchHappy",
	"Undersea", "Warp", "Comet", "Comet2", "Party", "Pineapple", "SnowyNight",
	"Spring", "Wolf", "NotInitialized", "PurpleHaze", "FireHaze", "GreenHaze",
	"AquaHaze", "CustomHaze", "CustomItems", "Pagoda", "Apocalypse", "Jungle",
	"BalloonWarz", "Background", "Autumn", "Hearth", "StPatricks", "IceAge",
	"Volcano", "FloatingIslands", "Mascot", "DigitalRain", "MonoChrome",
	"Treasure", "Surgery", "Bountiful", "Meteor", "Stars", "Ascended",
	"Destroyed", "GrowtopiaSign", "Dungeon", "LegendaryCity", "BloodDragon",
	"PopCity", "Anzu", "TmntCity", "RadCity", "Plaze", "Nebula", "ProtoStar",
	"DarkMountains", "Ac15", "MountGrowMore", "CrackInReality", "LnyNian",
	"RaymanLock", "Steampunk", "RealmOfSpirits", "Blackhole", "Gems",
	"HolidayHaven", "FenyxLock", "EnchantedLock", "RoyalEnchantedLock",
	"NeptunesAtlantis", "PinuskiPetalPerfectHaven", "Candyland",
}

func (w WeatherType) String() string {
	if int(w) < len(weatherNames) {
		return weatherNames[w]
	}
	return fmt.Sprintf("WeatherType(%d)", uint16(w))
}
