package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Gao0602-kimi/gopong/utils"
)

// Writes the default configuration as TOML, ready to edit and feed back in
// with -config.
func main() {
	out := flag.String("out", "", "output path, stdout when empty")
	flag.Parse()

	target := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Println("Error creating output file:", err)
			os.Exit(1)
		}
		defer f.Close()
		target = f
	}

	if err := toml.NewEncoder(target).Encode(utils.DefaultConfig()); err != nil {
		fmt.Println("Error encoding config:", err)
		os.Exit(1)
	}
}
