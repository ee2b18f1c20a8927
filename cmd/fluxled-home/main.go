// Command fluxled-home inspects Flux LED controller configuration and wire
// frames without touching a bulb: it lists the builtin preset table,
// validates a config file, and hex-dumps the protocol frames a transport
// would send.
package main

import (
	"fmt"
	"os"
	"sort"

	"fluxled-go-home/internal/config"
	"fluxled-go-home/internal/light"
	"fluxled-go-home/internal/protocol"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "effects":
		err = cmdEffects()
	case "check":
		err = cmdCheck(os.Args[2:])
	case "custom-frame":
		err = cmdCustomFrame(os.Args[2:])
	case "version":
		fmt.Println(version)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: fluxled-home <command>

commands:
  effects                          list builtin preset effects and codes
  check <config.yaml>              validate a configuration file
  custom-frame <config.yaml> <light>   hex-dump the custom pattern frame
  version                          print version`)
}

func cmdEffects() error {
	for _, name := range light.PresetEffects() {
		code, _ := light.EffectCode(name)
		fmt.Printf("0x%02X  %s\n", code, name)
	}
	fmt.Printf("0x%02X  %s (reserved)\n", light.EffectCustomCode, light.EffectCustom)
	return nil
}

func cmdCheck(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("check needs a config file path")
	}
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}
	logger := cfg.NewLogger()

	hosts := make([]string, 0, len(cfg.Lights))
	for host := range cfg.Lights {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)

	for _, host := range hosts {
		lc := cfg.Lights[host]
		custom := cfg.CustomEffectFor(host, logger)
		fmt.Printf("%s: name=%q mode=%s custom_colors=%d\n", host, lc.Name, lc.Mode, len(custom.Colors))
	}
	fmt.Printf("%d lights ok\n", len(hosts))
	return nil
}

func cmdCustomFrame(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("custom-frame needs a config file path and a light host")
	}
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}
	custom := cfg.CustomEffectFor(args[1], cfg.NewLogger())
	if len(custom.Colors) == 0 {
		return fmt.Errorf("light %s has no custom effect colors configured", args[1])
	}

	transition, ok := protocol.TransitionByte(string(custom.Transition))
	if !ok {
		return fmt.Errorf("unknown transition %q", custom.Transition)
	}
	colors := make([][3]uint8, len(custom.Colors))
	for i, c := range custom.Colors {
		colors[i] = [3]uint8(c)
	}
	frame, err := protocol.CustomPatternFrame(colors, custom.SpeedPct, transition)
	if err != nil {
		return err
	}
	fmt.Printf("% X\n", frame)
	return nil
}
