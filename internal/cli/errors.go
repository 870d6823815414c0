package cli

import "errors"

var (
	errMismatch        = errors.New("values do not match")
	errUnknownCategory = errors.New("unknown category")
	errUnknownField    = errors.New("unknown custom field")
	errBadFieldFlag    = errors.New("custom fields must look like name=value")
	errNothingToUpdate = errors.New("nothing to update, pass at least one flag")
	errBadShellLine    = errors.New("can not parse command line")
)
