// Package weblink parses and validates HTTP Link header field values as
// defined by RFC 8288 (Web Linking).
//
// The package turns one serialized field value into a collection of typed
// [link.WebLink] values plus a diagnostic [validate.Report]. Parsing is
// best-effort: a malformed link-value is reported and skipped, its valid
// neighbors survive. Only a contract violation, calling [Process] with
// empty input, returns an error.
//
//	res, err := weblink.Process(`<https://example.com/book>;rel="item";type=application/pdf`)
//	if err != nil {
//		// empty input
//	}
//	for _, ln := range res.Links() {
//		fmt.Println(ln.Target, ln.Rel())
//	}
//	if res.ContainsIssues() {
//		fmt.Println(res.Report())
//	}
//
// The pipeline performs no network I/O and never dereferences link targets.
// Each call is self-contained, so concurrent calls need no coordination.
package weblink
