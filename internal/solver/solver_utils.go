package solver

import (
	"encoding/json"
	"log"
	"os"

	"github.com/mitchellh/mapstructure"
)

// ConfigPath points at a json file mapping solver names to executable paths,
// e.g. {"minisatPath": "/usr/local/bin/minisat"}. The CLI overrides it with
// a config.json found next to the executable.
var ConfigPath = "../../config.json"

func getExecutablePath(solver string) string {
	bytes, _ := os.ReadFile(ConfigPath)
	var inputJson map[string]any
	err := json.Unmarshal(bytes, &inputJson)
	if err != nil {
		log.Fatalf("cannot read config.json file: %v", err)
	}

	var config map[string]string
	mapstructure.Decode(inputJson, &config)

	path, ok := config[solver]
	if !ok {
		log.Panicf("solver \"%v\" is not present in config", solver)
	}
	return path
}
