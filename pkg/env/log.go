package env

import "github.com/tliron/commonlog"

var log = commonlog.GetLogger("extbuild.env")
