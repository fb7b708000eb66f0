package banner

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed banner.txt
var banner string

// Version is set with -ldflags "-X .../internal/banner.Version=..."
var Version = "dev"

func init() {
	fmt.Println(strings.TrimSpace(banner))
	fmt.Printf("ota-backend %s\n\n", Version)
}
