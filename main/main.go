// Command substr prints part of a file through a substring view.
//
//	substr -pos 6 -len 5 notes.txt
//	substr -split , -frame data.csv.zst > fields.sv
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"

	"github.com/rawbytedev/substring"
	"github.com/rawbytedev/substring/internal/config"
	"github.com/rawbytedev/substring/pkg/bounds"
	"github.com/rawbytedev/substring/pkg/scan"
	"github.com/rawbytedev/substring/pkg/wire"
)

func main() {
	var (
		cfgPath  string
		policy   string
		pos      int
		length   int
		sep      string
		frame    bool
		compress bool
		level    string
	)
	flag.StringVar(&cfgPath, "config", "", "YAML config file")
	flag.StringVar(&policy, "policy", config.PolicyPanic, "bounds policy: ignore, panic or abort")
	flag.IntVar(&pos, "pos", 0, "offset of the first byte")
	flag.IntVar(&length, "len", -1, "number of bytes, negative for the rest")
	flag.StringVar(&sep, "split", "", "split the selection on this byte")
	flag.BoolVar(&frame, "frame", false, "write the fields as a wire frame")
	flag.BoolVar(&compress, "zstd", false, "compress the wire frame")
	flag.StringVar(&level, "log", "info", "log level")
	flag.Parse()

	cfg := config.DefaultConfig()
	if cfgPath != "" {
		loaded, err := config.LoadConfig(cfgPath)
		if err != nil {
			logrus.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "policy":
			cfg.Policy = policy
		case "pos":
			cfg.Pos = pos
		case "len":
			cfg.Len = length
		case "split":
			cfg.Separator = sep
		case "frame":
			cfg.Frame = frame
		case "zstd":
			cfg.Compress = compress
		case "log":
			cfg.LogLevel = level
		}
	})
	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}
	logrus.SetLevel(cfg.Level())

	input, err := readInput(flag.Arg(0))
	if err != nil {
		logrus.Fatalf("read input: %v", err)
	}
	if err := run(cfg, input, os.Stdout); err != nil {
		logrus.Fatal(err)
	}
}

// readInput reads path, or stdin when path is empty or "-". Files ending
// in .zst are decompressed.
func readInput(path string) ([]byte, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	}
	return io.ReadAll(r)
}

func run(cfg *config.Config, input []byte, w io.Writer) error {
	switch cfg.Policy {
	case config.PolicyIgnore:
		return process[bounds.Ignore](cfg, input, w)
	case config.PolicyAbort:
		return process[bounds.Abort](cfg, input, w)
	default:
		return process[bounds.Panic](cfg, input, w)
	}
}

func process[P bounds.Policy](cfg *config.Config, input []byte, w io.Writer) error {
	var sel substring.View[byte, P]
	err := bounds.Catch(func() {
		sel = substring.FromSlice[P](input).Substr(cfg.Pos, cfg.Len)
	})
	if err != nil {
		return fmt.Errorf("select from %d of %d bytes: %w", cfg.Pos, len(input), err)
	}
	logrus.WithFields(logrus.Fields{
		"policy": cfg.Policy,
		"pos":    cfg.Pos,
		"len":    sel.Len(),
	}).Debug("selected range")

	if cfg.Separator == "" && !cfg.Frame {
		_, err = sel.WriteTo(w)
		return err
	}

	sep := byte('\n')
	if cfg.Separator != "" {
		sep = cfg.Separator[0]
	}
	var fields []substring.View[byte, P]
	for f := range scan.Split(sel, sep) {
		fields = append(fields, scan.TrimSpace(f))
	}
	logrus.Debugf("split into %d fields", len(fields))

	if cfg.Frame {
		var flags byte
		if cfg.Compress {
			flags |= wire.FlagZstd
		}
		_, err = w.Write(wire.AppendFrame(nil, flags, fields...))
		return err
	}
	for _, f := range fields {
		if _, err := f.WriteTo(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
