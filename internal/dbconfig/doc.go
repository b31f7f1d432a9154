// Package dbconfig resolves a multi-environment database configuration
// document into the settings of a single current environment.
//
// A document is a JSON object whose keys are environment names (e.g. "dev",
// "test", "prod") plus an optional reserved "defaultEnv" key. Each
// environment is either a connection URL string or an object of settings.
// Loading a document runs three steps in order:
//  1. ${VAR} placeholders (and {"ENV": "VAR"} references) anywhere in the
//     document are replaced with values from the environment map;
//  2. the current environment name is chosen: explicit name, then the
//     selector variable (NODE_ENV by default), then "defaultEnv";
//  3. the current branch is normalized into [Settings], parsing it with
//     [ParseURL] when it was declared as a string.
//
// The entry points are [Load], [LoadBytes] and [LoadFile] for documents and
// [LoadURL] for a single connection string. All of them return a
// [ResolvedConfig] whose [ResolvedConfig.GetCurrent] reports the selected
// environment and its settings.
package dbconfig
