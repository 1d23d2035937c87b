// Command statuspush is the CLI front end for the statuspush library. It owns
// flag parsing, .env loading and exit codes; all delivery behavior lives in
// the library.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/kart-io/statuspush"
	"github.com/kart-io/statuspush/pkg/logger"
	"github.com/kart-io/statuspush/pkg/logger/adapters"
	"github.com/kart-io/statuspush/pkg/platform"
)

func main() {
	var (
		platformFlag = flag.String("platform", "", "target platform (wecom, dingtalk, feishu, slack, telegram); default wecom")
		titleFlag    = flag.String("title", "", "notification title (platforms with a title field)")
		colorFlag    = flag.String("color", "", "card color override (feishu)")
		taskFlag     = flag.String("task", "", "task name; switches to progress mode")
		statusFlag   = flag.String("status", "in_progress", "status kind for progress mode")
		detailsFlag  = flag.String("details", "", "optional details for progress mode")
		envFileFlag  = flag.String("env-file", "", "load environment variables from a dotenv-style file before sending")
		checkFlag    = flag.Bool("check", false, "print per-platform configuration status and exit")
		verboseFlag  = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if *envFileFlag != "" {
		if err := loadEnvFile(*envFileFlag); err != nil {
			fatal(err)
		}
	}

	level := logger.Warn
	if *verboseFlag {
		level = logger.Debug
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	log := adapters.NewZerologAdapter(zl, level)

	client := statuspush.New(statuspush.WithLogger(log))

	if *checkFlag {
		runCheck(client)
		return
	}

	opts := &statuspush.Options{
		Title: *titleFlag,
		Color: *colorFlag,
	}
	if *platformFlag != "" {
		p, err := platform.Parse(*platformFlag)
		if err != nil {
			fatal(err)
		}
		opts.Platform = p
	}

	ctx := context.Background()
	var (
		resp map[string]any
		err  error
	)
	if *taskFlag != "" {
		resp, err = client.PushProgress(ctx, *taskFlag, platform.StatusKind(*statusFlag), *detailsFlag, opts)
	} else {
		content := strings.Join(flag.Args(), " ")
		if content == "" {
			fatal(fmt.Errorf("nothing to send: pass a message argument or -task"))
		}
		resp, err = client.Push(ctx, content, opts)
	}
	if err != nil {
		fatal(err)
	}

	out, _ := json.Marshal(resp)
	fmt.Println(string(out))
}

// runCheck prints the registry enumeration with per-platform configuration
// status, using only the read-only constants the library exposes.
func runCheck(client *statuspush.Client) {
	for _, p := range platform.All() {
		state := "not configured"
		if client.IsConfigured(p) {
			state = "configured"
		}
		vars := p.CredentialVar()
		if extra := p.ExtraVar(); extra != "" {
			vars += ", " + extra
		}
		fmt.Printf("%-10s %-16s (%s)\n", p, state, vars)
	}
}

// loadEnvFile reads a dotenv-style file and exports its keys into the
// process environment, without overriding variables already set.
func loadEnvFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	for _, key := range v.AllKeys() {
		name := strings.ToUpper(key)
		if os.Getenv(name) != "" {
			continue
		}
		if err := os.Setenv(name, v.GetString(key)); err != nil {
			return err
		}
	}
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
