// Package common provides the configuration and logging pieces shared by the
// fmtsize packages.
//
// Key Components:
//
//   - Config: all settings of a comparison run (input file, record count,
//     output directory, log level, verification and metrics switches).
//     The zero value is not usable, start from DefaultConfig.
//
//   - Logger: custom logging implementation that plugs into Dragonboat's
//     logger registry so every package obtains its logger through
//     logger.GetLogger with a consistent line format.
package common
