package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"xiangqi/internal/cli"
	"xiangqi/internal/game"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	color := flag.String("color", "", "board colors: auto, always or never")
	rule := flag.String("rule", "", "self-check rule: literal or standard")
	saveDir := flag.String("save-dir", "", "directory for relative save/load paths")
	flag.Parse()

	cfg, err := cli.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	// 命令行参数覆盖配置文件
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = *logLevel
		case "color":
			cfg.Color = cli.ColorMode(*color)
		case "rule":
			cfg.SelfCheckRule = *rule
		case "save-dir":
			cfg.SaveDir = *saveDir
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:     colorable.NewColorableStderr(),
		NoColor: !isTerminal(os.Stderr),
	})

	selfCheck, _ := cfg.Rule()
	g := game.New(game.WithSelfCheckRule(selfCheck))

	s := cli.NewSession(g, colorable.NewColorableStdout())
	s.Color = cfg.UseColor(isTerminal(os.Stdout))
	s.SaveDir = cfg.SaveDir

	log.Info().Str("rule", selfCheck.String()).Str("save_dir", cfg.SaveDir).Msg("session starting")
	if err := s.Run(os.Stdin); err != nil {
		log.Fatal().Err(err).Msg("reading input")
	}
}
