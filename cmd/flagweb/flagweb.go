// Binary flagweb serves the built sprite sheet, its index and every flag
// cropped out of the sheet, for checking the assets in a browser.
package main

import (
	"flag"
	"net/http"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	_ "golang.org/x/net/trace"

	"badc0de.net/pkg/flagquiz/paths"
	"badc0de.net/pkg/flagquiz/web"
)

var (
	listenAddress = flag.String("listen_address", ":8080", "http listen address for flagweb")

	spritePath string
	indexPath  string
)

func main() {
	paths.SetupFilePathFlag(paths.SpritePath, "sprite_path", &spritePath)
	paths.SetupFilePathFlag(paths.IndexPath, "index_path", &indexPath)
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	h, err := web.Load(spritePath, indexPath)
	if err != nil {
		glog.Exitf("loading sprite: %v", err)
	}

	r := mux.NewRouter()
	h.RegisterRoutes(r)
	// net/trace registers /debug/requests and /debug/events on the default mux.
	r.PathPrefix("/debug/").Handler(http.DefaultServeMux)

	glog.Infof("listening on %s", *listenAddress)
	glog.Fatal(http.ListenAndServe(*listenAddress, handlers.CompressHandler(handlers.CombinedLoggingHandler(os.Stderr, r))))
}
