package commands

import (
	"errors"

	"nailorders/internal/pkg/guard"
)

var ErrMigrateInlineImagesCommandIsNotConstructed = errors.New(
	"MigrateInlineImagesCommand must be created via NewMigrateInlineImagesCommand constructor",
)

// MigrateInlineImagesCommand moves base64 data URL images stored inside order
// rows to object storage. With dryRun set nothing is uploaded or written.
type MigrateInlineImagesCommand struct { //nolint:recvcheck //using for validation
	dryRun bool

	guard guard.ConstructorGuard
}

func NewMigrateInlineImagesCommand(dryRun bool) MigrateInlineImagesCommand {
	return MigrateInlineImagesCommand{
		dryRun: dryRun,
		guard:  guard.NewConstructorGuard(),
	}
}

func (c MigrateInlineImagesCommand) Validate() error {
	return c.guard.Validate(ErrMigrateInlineImagesCommandIsNotConstructed)
}

func (c MigrateInlineImagesCommand) DryRun() bool {
	return c.dryRun
}
