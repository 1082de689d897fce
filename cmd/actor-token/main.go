// Command actor-token mints a bearer token for a duel participant.
//
//	SESSION_SECRET=... actor-token -id 42 -name alice
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ericogr/duel-arena/internal/api"
	"github.com/ericogr/duel-arena/internal/config"
	"github.com/ericogr/duel-arena/internal/constants"
)

func main() {
	id := flag.Int64("id", 0, "numeric actor id (required)")
	name := flag.String("name", "", "display name used in acknowledgements")
	flag.Parse()

	if *id == 0 {
		fmt.Fprintln(os.Stderr, "actor-token: -id is required")
		os.Exit(2)
	}
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "actor-token: %v\n", err)
		os.Exit(1)
	}
	if cfg.Auth.SessionSecret == "" {
		fmt.Fprintf(os.Stderr, "actor-token: %s must be set to mint tokens the server accepts\n", constants.EnvSessionSecret)
		os.Exit(1)
	}
	issuer, err := api.NewTokenIssuer(cfg.Auth.SessionSecret, cfg.Auth.TokenTTL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "actor-token: %v\n", err)
		os.Exit(1)
	}
	token, err := issuer.Issue(*id, *name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "actor-token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
