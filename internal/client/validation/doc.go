// Package validation holds the sign-in, recovery and sign-up form rules.
//
// Every function here is pure: it maps raw field values to either nil or a
// *FieldError carrying the failed Rule and a message ready for display.
// Field validators stop at the first failing rule; form validators always
// check every field and collect the failures into Errors.
//
// Rule order for usernames: Required, TooShort, TooLong, InvalidCharacters.
// Rule order for passwords: Required, TooShort, TooLong.
package validation
