// Binary flagsprite packs the downloaded flags into one sprite sheet and
// writes a JSON index with each flag's rectangle and its name in every quiz
// language.
package main

import (
	"context"
	"flag"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/flagquiz/names"
	"badc0de.net/pkg/flagquiz/paths"
	"badc0de.net/pkg/flagquiz/sprite"
)

var (
	datasetURL = flag.String("dataset_url", names.DefaultDatasetURL, "country reference dataset (restcountries.com v3.1 format)")

	flagsDir   string
	spritePath string
	indexPath  string
)

func main() {
	paths.SetupFilePathFlag(paths.FlagsDir, "flags_dir", &flagsDir)
	paths.SetupOutputPathFlag(paths.SpritePath, "sprite_path", &spritePath)
	paths.SetupOutputPathFlag(paths.IndexPath, "index_path", &indexPath)
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	ix, err := names.Fetch(context.Background(), nil, *datasetURL)
	if err != nil {
		glog.Exitf("loading country names: %v", err)
	}

	b := &sprite.Builder{Names: ix}
	report, err := b.Build(flagsDir, spritePath, indexPath)
	if err != nil {
		glog.Exitf("building sprite: %v", err)
	}
	glog.Infof("%s", report.Summary())
	glog.Flush()
}
