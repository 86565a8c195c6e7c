package utils

// REVISION is stamped into every response envelope. Override at build time
// with -ldflags "-X github.com/SwiftFiat/SwiftFiat-Escrow/utils.REVISION=<sha>".
var REVISION = "dev"
