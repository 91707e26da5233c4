// Package logx configures schedview's structured logging.
//
// This repo uses a small wrapper (logx.Logger) on top of zerolog to keep
// console output readable (short timestamp + short caller) while call sites
// stay structured via Field helpers.
package logx
