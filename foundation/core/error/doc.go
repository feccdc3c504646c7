// Package error provides structured error handling for the dayx foundation.
//
// Package: error
// Title: dayx Error Handling Framework
// Description: This package implements a structured error type carrying an
//              error code, a severity and key/value details. It keeps full
//              compatibility with the standard error interface, including
//              errors.Is / errors.As through Unwrap.
// Author: dayx team
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-12-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-12-14 v0.2.0: Reduced to the codes used by timex and the dayx CLI,
//                      HasCode/GetCode now walk the wrap chain
//
// Usage:
//   import mdwerror "github.com/msto63/dayx/foundation/core/error"
//
//   // Wrap a sentinel with context
//   err := mdwerror.Wrap(ErrParse, fmt.Sprintf("parse %q", input)).
//     WithCode(mdwerror.CodeParseFailed).
//     WithDetail("input", input)
//
//   // Check error code anywhere in the chain
//   if mdwerror.HasCode(err, mdwerror.CodeParseFailed) {
//     // Handle parse errors specifically
//   }
package error
