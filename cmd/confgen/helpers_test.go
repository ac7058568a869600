package confgen

import "github.com/arthur-debert/confgen/pkg/filesystem"

func osFS() filesystem.FS { return filesystem.NewOS() }
