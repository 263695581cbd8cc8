// Command ytgrab is the desktop downloader. It is the same program as the
// module root and exists for `go install .../cmd/ytgrab`.
package main

import (
	"os"

	"github.com/ytget/ytgrab/internal/app"
)

var version = "dev"

func main() {
	os.Exit(app.Main(version))
}
