package main

import (
	"fmt"
	"os"
	"strings"

	units "github.com/docker/go-units"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arloliu/catalog24x7"
	"github.com/arloliu/catalog24x7/catalog"
)

// version will be populated by the Makefile.
var version = ""

// gitCommit will be the hash that the binary was built from
// and will be populated by the Makefile.
var gitCommit = ""

// usageExitCode is returned for invalid flags or arguments.
const usageExitCode = 2

const usage = `generate the 24x7 performance catalog

mkcatalog writes catalog.bin, the fixed-size image that describes the nest
units and events supported by the custom microcode. The image is added to
the PNOR "Catalog" partition at firmware build time.

    $ mkcatalog -d output/`

func main() {
	app := cli.NewApp()
	app.Name = "mkcatalog"
	app.Usage = usage

	var v []string
	if version != "" {
		v = append(v, version)
	}
	if gitCommit != "" {
		v = append(v, "commit: "+gitCommit)
	}
	app.Version = strings.Join(v, "\n")

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "dir, d",
			Value: ".",
			Usage: "directory to write " + catalog.FileName + " into",
		},
	}
	app.OnUsageError = func(_ *cli.Context, err error, _ bool) error {
		return cli.NewExitError(err.Error(), usageExitCode)
	}
	app.Action = func(ctx *cli.Context) error {
		if ctx.NArg() != 0 {
			return cli.NewExitError(fmt.Sprintf("unexpected arguments: %s", strings.Join(ctx.Args(), " ")), usageExitCode)
		}
		_, err := generate(ctx.String("dir"), logrus.StandardLogger())

		return err
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

// generate builds the catalog from the static definitions, verifies it and
// writes it into dir. It returns the path of the written file.
func generate(dir string, log logrus.FieldLogger) (string, error) {
	img, err := catalog24x7.Build(nestEvents, nestGroups,
		catalog.WithVersion(catalogVersion),
		catalog.WithDateString(catalogDate),
		catalog.WithLogger(log),
	)
	if err != nil {
		return "", errors.Wrap(err, "build catalog")
	}

	decoded, err := catalog.Decode(img.Bytes())
	if err != nil {
		return "", errors.Wrap(err, "verify catalog")
	}
	if len(decoded.Events) != len(nestEvents) || len(decoded.Groups) != len(nestGroups) {
		return "", errors.Errorf("verify catalog: decoded %d events and %d groups, encoded %d and %d",
			len(decoded.Events), len(decoded.Groups), len(nestEvents), len(nestGroups))
	}

	path, err := img.WriteFile(dir)
	if err != nil {
		return "", err
	}

	layout := img.Layout()
	log.WithFields(logrus.Fields{
		"path":     path,
		"events":   len(decoded.Events),
		"groups":   len(decoded.Groups),
		"pages":    layout.TotalPages,
		"free":     layout.FreePages(),
		"size":     units.BytesSize(float64(img.Size())),
		"checksum": fmt.Sprintf("%016x", img.Checksum()),
	}).Info("catalog written")

	return path, nil
}
