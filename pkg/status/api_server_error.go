// Copyright 2022 Google LLC
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

import (
	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// APIServerErrorCode is the error code for a status Error originating from the kubernetes API server.
const APIServerErrorCode = "2002"

var apiServerErrorBuilder = NewErrorBuilder(APIServerErrorCode).Sprint("APIServer error")

// InsufficientPermissionErrorCode is the error code when the credentials used
// cannot list a resource.
const InsufficientPermissionErrorCode = "2013"

// InsufficientPermissionErrorBuilder builds errors for listing resources without permission.
var InsufficientPermissionErrorBuilder = NewErrorBuilder(InsufficientPermissionErrorCode).
	Sprint("Insufficient permission. To fix, make sure the current credentials can list every linted resource.")

// APIServerErrorf wraps an error returned by the APIServer with a formatted message.
func APIServerErrorf(err error, format string, a ...interface{}) Error {
	if apierrors.IsForbidden(err) {
		return InsufficientPermissionErrorBuilder.Sprintf(format, a...).Wrap(err).Build()
	}
	return apiServerErrorBuilder.Sprintf(format, a...).Wrap(err).Build()
}
