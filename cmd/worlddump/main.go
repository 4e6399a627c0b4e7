// worlddump decodes a captured world blob and prints a summary. It can also
// export the decoded model as JSON, render a tile map as PNG, and verify that
// re-encoding reproduces the input byte for byte.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gtworld/gtworld"
	"github.com/gtworld/gtworld/item"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", os.Getenv("WORLDDUMP_CONFIG"), "TOML config file")
	itemsPath := flag.String("items", "", "item table YAML (overrides config)")
	jsonOut := flag.String("json", "", "write decoded world as JSON to this file")
	pngOut := flag.String("png", "", "render the tile map as PNG to this file")
	verify := flag.Bool("verify", false, "re-encode and compare against the input bytes")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: worlddump [flags] <world.bin>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	worldPath := flag.Arg(0)

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *itemsPath != "" {
		cfg.Items.Path = *itemsPath
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	db, err := item.Load(cfg.Items.Path)
	if err != nil {
		return fmt.Errorf("load item table: %w", err)
	}
	log.Info("item table loaded",
		zap.String("path", cfg.Items.Path),
		zap.Int("items", db.Len()))

	data, err := os.ReadFile(worldPath)
	if err != nil {
		return fmt.Errorf("read world: %w", err)
	}

	w, err := gtworld.NewDecoder(db, log).Parse(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", worldPath, err)
	}
	printSummary(w)

	if *verify {
		out := w.Serialize()
		if !bytes.Equal(out, data) {
			return fmt.Errorf("round trip mismatch: input %d bytes, output %d bytes, first difference at offset %d",
				len(data), len(out), firstDiff(data, out))
		}
		log.Info("round trip verified", zap.Int("bytes", len(data)))
	}

	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, w); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
		log.Info("json written", zap.String("path", *jsonOut))
	}

	if *pngOut != "" {
		if err := renderPNG(*pngOut, w, db); err != nil {
			return fmt.Errorf("render png: %w", err)
		}
		log.Info("png written", zap.String("path", *pngOut))
	}

	return nil
}

func printSummary(w *gtworld.World) {
	fmt.Printf("world %q: %dx%d, %d tiles, version %d\n",
		w.Name, w.Width, w.Height, w.TileCount, w.Version)

	histogram := make(map[item.Category]int)
	for i := range w.Tiles {
		if w.Tiles[i].Flags.HasExtraData {
			histogram[w.Tiles[i].Extra.Category()]++
		}
	}
	cats := make([]item.Category, 0, len(histogram))
	for c := range histogram {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	for _, c := range cats {
		fmt.Printf("  category %3d: %d tiles\n", c, histogram[c])
	}
	fmt.Printf("  dropped items: %d (last uid %d)\n", w.Dropped.Count, w.Dropped.LastUID)
	fmt.Printf("  weather: base %s, current %s\n", w.BaseWeather, w.CurrentWeather)
}

func writeJSON(path string, w *gtworld.World) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(w); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func firstDiff(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func newLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
