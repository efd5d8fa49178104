package main

import (
	"context"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/emojitile"
	"github.com/bodgit/emojitile/storage"
	"github.com/bodgit/emojitile/tile"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func options(c *cli.Context) emojitile.Options {
	return emojitile.Options{
		KeepBorder: c.Bool("keep-border"),
		Width:      c.Int("width"),
		Height:     c.Int("height"),
		MaxTiles:   c.Int("max-tiles"),
		BaseName:   c.String("name"),
		Unit:       c.Int("unit"),
		Colors:     c.Int("colors"),
	}
}

var layoutFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    "keep-border",
		Aliases: []string{"b"},
		Usage:   "keep the transparent border",
	},
	&cli.IntFlag{
		Name:    "width",
		Aliases: []string{"W"},
		Usage:   "number of tiles across, 0 for auto",
	},
	&cli.IntFlag{
		Name:    "height",
		Aliases: []string{"H"},
		Usage:   "number of tiles down, 0 for auto",
	},
	&cli.IntFlag{
		Name:    "max-tiles",
		Aliases: []string{"t"},
		Usage:   "best fit the aspect ratio with at most this many tiles on the longer side, 0 to round",
	},
	&cli.IntFlag{
		Name:    "unit",
		Aliases: []string{"u"},
		Value:   tile.Unit,
		Usage:   "tile size in pixels",
	},
}

func main() {
	app := cli.NewApp()

	app.Name = "emojitile"
	app.Usage = "Split an image into custom emoji tiles"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Split an image into tiles",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   ".",
					Usage:   "directory to write tiles to",
				},
				&cli.StringFlag{
					Name:    "name",
					Aliases: []string{"n"},
					Usage:   "base name of the output files",
				},
				&cli.IntFlag{
					Name:    "colors",
					Aliases: []string{"c"},
					Usage:   "reduce each tile to this many colors, 0 for full color",
				},
				&cli.StringFlag{
					Name:    "bucket",
					EnvVars: []string{"EMOJITILE_BUCKET"},
					Usage:   "upload the tiles to this bucket",
				},
				&cli.StringFlag{
					Name:    "prefix",
					EnvVars: []string{"EMOJITILE_PREFIX"},
					Usage:   "key prefix for uploaded tiles",
				},
				&cli.StringFlag{
					Name:    "endpoint",
					EnvVars: []string{"EMOJITILE_ENDPOINT"},
					Usage:   "S3 compatible endpoint URL",
				},
				&cli.StringFlag{
					Name:    "region",
					EnvVars: []string{"EMOJITILE_REGION", "AWS_REGION"},
					Usage:   "bucket region",
				},
				&cli.StringFlag{
					Name:    "access-key",
					EnvVars: []string{"EMOJITILE_ACCESS_KEY", "AWS_ACCESS_KEY_ID"},
					Usage:   "access key for the bucket",
				},
				&cli.StringFlag{
					Name:    "secret-key",
					EnvVars: []string{"EMOJITILE_SECRET_KEY", "AWS_SECRET_ACCESS_KEY"},
					Usage:   "secret key for the bucket",
				},
			}, layoutFlags...),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger := newLogger(c)

				ctx := context.Background()

				// Fail on bad bucket config before writing anything
				var u *storage.Uploader
				if c.String("bucket") != "" {
					var err error
					if u, err = storage.New(ctx, storage.Config{
						Endpoint:  c.String("endpoint"),
						Region:    c.String("region"),
						AccessKey: c.String("access-key"),
						SecretKey: c.String("secret-key"),
						Bucket:    c.String("bucket"),
						Prefix:    c.String("prefix"),
					}, logger); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				s, err := emojitile.New(logger).Convert(c.Args().First(), c.String("output"), options(c))
				if s != nil {
					fmt.Println(s)
				}
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if u != nil {
					if err := u.Upload(ctx, c.String("output"), s.Written); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				return nil
			},
		},
		{
			Name:        "info",
			Usage:       "Show how an image would be tiled",
			Description: "",
			ArgsUsage:   "FILE",
			Flags:       layoutFlags,
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := emojitile.Load(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				p, err := emojitile.New(newLogger(c)).Plan(m, options(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Println(p)

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
