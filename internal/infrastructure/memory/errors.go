package memory

import "errors"

var errStoreUnavailable = errors.New("memory: almacén no disponible")
