package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/lixenwraith/bounce-arena/audio"
	"github.com/lixenwraith/bounce-arena/config"
	"github.com/lixenwraith/bounce-arena/core"
	"github.com/lixenwraith/bounce-arena/engine"
	"github.com/lixenwraith/bounce-arena/game"
	"github.com/lixenwraith/bounce-arena/locale"
	"github.com/lixenwraith/bounce-arena/network"
	"github.com/lixenwraith/bounce-arena/parameter"
)

// options are the command-line settings that are not part of config.Config
type options struct {
	debug      bool
	configPath string
	headless   bool
	script     string
	dt         float64
	serve      string
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "bounce-arena: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	headless := opts.headless || !isTerminal(stdout)
	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	} else if opts.debug && headless {
		log.SetOutput(os.Stderr)
	}

	locale.Init(cfg.LocaleDir, cfg.Lang)

	var spectator *network.Spectator
	if opts.serve != "" {
		netCfg := network.DefaultConfig()
		netCfg.Address = opts.serve
		spectator = network.NewSpectator(netCfg)
		if err := spectator.Start(); err != nil {
			log.Printf("spectator disabled: %v", err)
			fmt.Fprintf(os.Stderr, "spectator stream failed: %v (continuing without it)\n", err)
			spectator = nil
		} else {
			defer stopSpectator(spectator)
		}
	}

	if headless {
		steps, err := parseScript(opts.script)
		if err != nil {
			return err
		}
		g, err := game.New(cfg, engine.Viewport{Width: cfg.ArenaWidth, Height: cfg.ArenaHeight})
		if err != nil {
			return err
		}
		return runHeadless(g, steps, opts.dt, spectator, stdout)
	}

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	build := func(vp engine.Viewport) (*game.Game, error) { return game.New(cfg, vp) }
	return runInteractive(build, sound, spectator)
}

// parseArgs layers defaults, the optional config file, the environment and explicit flags
func parseArgs(args []string) (*config.Config, *options, error) {
	fs := flag.NewFlagSet("bounce-arena", flag.ContinueOnError)

	opts := &options{}
	fs.BoolVar(&opts.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
	fs.StringVar(&opts.configPath, "config", "", "JSON config file")
	fs.BoolVar(&opts.headless, "headless", false, "run the script without a terminal UI")
	fs.StringVar(&opts.script, "script", "right:1.0,up:0.5,idle:2.0", "headless key script, key[+key]:seconds,...")
	fs.Float64Var(&opts.dt, "dt", parameter.HeadlessFrameDelta.Seconds(), "headless frame step in seconds")
	fs.StringVar(&opts.serve, "serve", "", "stream snapshots to websocket spectators on this address")

	enemySpeed := fs.Float64("enemy-speed", parameter.EnemySpeed, "wanderer speed, 200 or 300")
	enemies := fs.Int("enemies", parameter.NumberOfEnemies, "number of wanderers")
	noConfine := fs.Bool("no-confine", false, "let wanderers leave the arena bounds")
	seed := fs.Uint64("seed", 0, "random seed, 0 for time based")
	mute := fs.Bool("mute", false, "disable audio")
	volume := fs.Int("volume", int(parameter.AudioMasterVolume*100), "master volume 0-100")
	lang := fs.String("lang", "", "message language")
	width := fs.Float64("width", parameter.DefaultArenaWidth, "headless arena width")
	height := fs.Float64("height", parameter.DefaultArenaHeight, "headless arena height")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg := config.Default()
	if opts.configPath != "" {
		if err := cfg.LoadFile(opts.configPath); err != nil {
			return nil, nil, err
		}
	}
	cfg.ApplyEnv()

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "enemy-speed":
			cfg.EnemySpeed = *enemySpeed
		case "enemies":
			cfg.EnemyCount = *enemies
		case "no-confine":
			cfg.ConfineWanderers = !*noConfine
		case "seed":
			cfg.Seed = *seed
		case "mute":
			cfg.Audio.Enabled = !*mute
		case "volume":
			cfg.Audio.MasterVolume = float64(*volume) / 100
		case "lang":
			cfg.Lang = *lang
		case "width":
			cfg.ArenaWidth = *width
		case "height":
			cfg.ArenaHeight = *height
		}
	})
	cfg.Sanitize()
	return cfg, opts, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func stopSpectator(s *network.Spectator) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Stop(ctx); err != nil {
		log.Printf("spectator stop: %v", err)
	}
}
