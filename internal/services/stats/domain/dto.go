// Package domain holds DTOs for stats http and service contracts
package domain

import "pkgstats/internal/core/contents"

// MaxTopN bounds how many entries one call may ask for
const MaxTopN = 1000

// TopInput selects the architecture to rank and how many packages to return
type TopInput struct {
	Architecture string `json:"architecture" validate:"required,debian_arch" example:"amd64"`
	N            int    `json:"n" validate:"min=1,max=1000" example:"10"`
}

// TopResult is the ranking for one architecture
type TopResult struct {
	Architecture string           `json:"architecture" example:"amd64"`
	Entries      []contents.Entry `json:"entries"`
}
