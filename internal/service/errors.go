package service

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// traducirErrorDB maps the two backend constraint errors that carry
// application-wide meaning to domain messages. Any other backend error is
// logged with full detail and replaced by the generic fallback so raw
// database errors never reach the end user.
func traducirErrorDB(err error, msgDuplicado, msgFK, msgGenerico string) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.New(msgDuplicado)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errors.New(msgFK)
	default:
		log.Error().Err(err).Msg("backend error")
		return errors.New(msgGenerico)
	}
}
