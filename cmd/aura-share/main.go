// Command aura-share converts between garden save files and share links.
//
//	aura-share encode [-base URL] [-save FILE]
//	aura-share decode LINK
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pthm-cable/aura/config"
	"github.com/pthm-cable/aura/constellation"
	"github.com/pthm-cable/aura/progress"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	switch args[0] {
	case "encode":
		return encode(args[1:], stdout, stderr)
	case "decode":
		return decode(args[1:], stdout, stderr)
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: aura-share encode [-base URL] [-save FILE]")
	fmt.Fprintln(w, "       aura-share decode LINK")
}

func encode(args []string, stdout, stderr io.Writer) int {
	defaults := config.Default()

	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	base := fs.String("base", defaults.Persistence.ShareBaseURL, "Link prefix before the #fragment")
	save := fs.String("save", defaults.Persistence.SavePath, "Save file (empty = user config dir)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	path := *save
	if path == "" {
		p, err := progress.DefaultSavePath()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		path = p
	}

	store := &progress.FileStore{Path: path}
	snap, err := store.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if snap == nil || len(snap.UnlockedConstellations) == 0 {
		fmt.Fprintln(stderr, "nothing unlocked yet in", path)
		return 1
	}

	link, err := progress.EncodeShareLink(*base, *snap)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, link)
	return 0
}

func decode(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	names := fs.Bool("names", false, "List constellation names instead of JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "decode takes exactly one link")
		return 2
	}

	snap, err := progress.DecodeShareLink(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if *names {
		catalog := constellation.Default()
		for _, rec := range snap.UnlockedConstellations {
			fmt.Fprintf(stdout, "%s (%.0f, %.0f)\n", catalog.Name(rec.Key), rec.X, rec.Y)
		}
		return 0
	}

	data, err := snap.Marshal()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, strings.TrimSpace(string(data)))
	return 0
}
