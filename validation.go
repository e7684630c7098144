package queuelog

import (
	stderrs "errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"
)

// configValidator builds the shared validator once, with the logfile rule
// registered.
var configValidator = sync.OnceValues(func() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("logfile", isLogFilePath); err != nil {
		return nil, err
	}
	return v, nil
})

// isLogFilePath accepts paths that can name a regular file: no NUL bytes,
// no trailing separator and not an existing directory. The file itself and
// its parent directory need not exist yet.
func isLogFilePath(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if strings.ContainsRune(path, 0) {
		return false
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(os.PathSeparator)) {
		return false
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return false
	}
	return true
}

func validateConfig(cfg *Config) error {
	const op errors.Op = "queuelog.validateConfig"
	if cfg == nil {
		return errors.New(op).Msg(errMsgNilConfig)
	}

	v, err := configValidator()
	if err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	if err = v.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if stderrs.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return errors.New(op).Err(err).Msg(fmt.Sprintf("%s %s: %q fails %q", errMsgConfigInvalid, fe.Field(), fe.Value(), fe.Tag()))
		}
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	return nil
}
