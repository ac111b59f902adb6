// Binary render resolves a template name through the configured
// loader chain and renders it with explicit variable substitutions.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/byte4ever/tplchain/template"

	_ "github.com/byte4ever/tplchain/template/loaders/filesystem"
	_ "github.com/byte4ever/tplchain/template/loaders/github"
	_ "github.com/byte4ever/tplchain/template/loaders/gitlab"
	_ "github.com/byte4ever/tplchain/template/loaders/memory"
)

type arrayFlags []string

func (af *arrayFlags) String() string {
	return ""
}

func (af *arrayFlags) Set(value string) error {
	*af = append(*af, value)
	return nil
}

func main() {
	var (
		configPath string
		names      arrayFlags
		variables  arrayFlags
		output     string
	)

	flag.StringVar(
		&configPath, "config", "",
		"Loader chain config file (.yaml, .yml or .json)",
	)

	flag.Var(
		&names,
		"name",
		"Template name; repeat to try candidates in order",
	)

	flag.Var(
		&variables,
		"variable",
		"Variable in NAME=VALUE format (repeatable)",
	)

	flag.StringVar(
		&output, "output", "",
		"Output file path (stdout if empty)",
	)

	flag.Parse()

	if configPath == "" {
		log.Fatal("missing -config")
	}

	cfg, err := template.LoadConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}

	template.Configure(cfg)

	data := make(map[string]interface{}, len(variables))

	for _, vr := range variables {
		parts := strings.SplitN(vr, "=", 2)
		if len(parts) != 2 {
			log.Fatalf(
				"variable must be NAME=VALUE, got %s", vr,
			)
		}

		data[parts[0]] = parts[1]
	}

	out, err := template.RenderFirstToString(
		names, data, nil, nil,
	)
	if err != nil {
		log.Fatal(err)
	}

	if output == "" {
		os.Stdout.WriteString(out)
		return
	}

	err = os.WriteFile(output, []byte(out), 0o666) //nolint:gosec // path from CLI flag
	if err != nil {
		log.Fatal(err)
	}
}
