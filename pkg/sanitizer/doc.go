// Package sanitizer provides helpers for cleaning untrusted user input before
// it is validated and persisted.
//
// The functions are grouped into two areas:
//
//   - Strings: trimming, case conversion, whitespace and e-mail normalisation,
//     de-duplication of token lists.
//
//   - Markup: profile-level HTML sanitisation for localized content fields.
//     A fixed denylist of tags (script, style, iframe, object, embed, form,
//     input, button, link, meta) and attributes (event handlers, style, href,
//     formaction, srcdoc) is removed while benign inline formatting such as
//     <b> or <i> survives.
//
// The package is stateless. None of the helpers returns an error; they always
// fall back to a safe result. The higher-order Apply and Compose helpers allow
// the creation of sanitisation pipelines:
//
//	category := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.ToUpper,
//	)
//
//	category("  frontend ") // "FRONTEND"
//
// Markup helpers distinguish "the user sent nothing" from "the user sent only
// disallowed markup":
//
//	sanitizer.IsWhitespaceOnly("   ")                            // true
//	sanitizer.IsEmptyAfterSanitization("   ")                    // false
//	sanitizer.IsEmptyAfterSanitization("<script>x</script>")     // true
//	sanitizer.SanitizeInput("  <b onclick=\"x()\">Hi</b> ")      // "<b>Hi</b>"
//
// All helpers are safe for concurrent use.
package sanitizer
