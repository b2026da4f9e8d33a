// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

// UnknownTypeErrorCode is the error code for a manifest whose group, version
// and kind is not one korrecte knows how to lint.
const UnknownTypeErrorCode = "1001"

var unknownTypeError = NewErrorBuilder(UnknownTypeErrorCode)

// UnknownTypeError reports that the (group, version, kind) triple has no
// registered object type.
func UnknownTypeError(group, version, kind string) Error {
	return unknownTypeError.
		Sprintf("unsupported object type group=%q version=%q kind=%q", group, version, kind).
		Build()
}

// ObjectParseErrorCode is the error code for a manifest that could not be
// decoded into its registered type.
const ObjectParseErrorCode = "1002"

var objectParseError = NewErrorBuilder(ObjectParseErrorCode)

// ObjectParseError wraps a decoding failure for the given apiVersion and kind.
func ObjectParseError(apiVersion, kind string, err error) Error {
	return objectParseError.
		Sprintf("the following config could not be parsed as %s, Kind=%s", apiVersion, kind).
		Wrap(err).
		Build()
}

// InvalidConfigErrorCode is the error code for a config file that could not
// be loaded.
const InvalidConfigErrorCode = "1003"

var invalidConfigError = NewErrorBuilder(InvalidConfigErrorCode)

// InvalidConfigError wraps a failure to read or decode the config file at path.
func InvalidConfigError(path string, err error) Error {
	return invalidConfigError.Sprintf("invalid config file %q", path).Wrap(err).Build()
}

// UnknownLintErrorCode is the error code for a lint name that is not in the
// catalog.
const UnknownLintErrorCode = "1004"

var unknownLintError = NewErrorBuilder(UnknownLintErrorCode)

// UnknownLintError reports a lint name that does not exist. suggestion may be
// empty.
func UnknownLintError(name, suggestion string) Error {
	if suggestion == "" {
		return unknownLintError.Sprintf("unknown lint %q", name).Build()
	}
	return unknownLintError.Sprintf("unknown lint %q, did you mean %q?", name, suggestion).Build()
}

// ManifestParseError wraps a document that is not valid YAML or JSON.
func ManifestParseError(err error) Error {
	return objectParseError.Sprint("the document is not a valid manifest").Wrap(err).Build()
}

// InvalidOptionErrorCode is the error code for an invalid combination of
// lint pass options.
const InvalidOptionErrorCode = "1005"

var invalidOptionError = NewErrorBuilder(InvalidOptionErrorCode)

// InvalidOptionError reports an option korrecte cannot act on.
func InvalidOptionError(format string, a ...interface{}) Error {
	return invalidOptionError.Sprintf(format, a...).Build()
}
