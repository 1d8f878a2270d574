// Package words provides the word lists the secret is chosen from and the
// random selector that picks it.
package words

import "embed"

// dataFS embeds the default word lists at build time.
//
//go:embed *.json
var dataFS embed.FS
