package platform

import (
	"github.com/kart-io/statuspush/pkg/errors"
)

func errUnknownPlatform(id string) error {
	return errors.NewUnknownPlatform(id, Names())
}
