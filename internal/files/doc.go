// Package files checks the source workbooks of an extraction run before any
// of them is read.
//
// Discovery lists the spreadsheets of the source directory so that files
// dropped there without a matching configuration entry can be reported.
// Preflight verifies every configured source at once, so a run with three
// missing files reports all three instead of stopping at the first.
//
// Example usage:
//
//	discovery := files.NewDiscovery(paths.SourceDir)
//	if err := discovery.Preflight(sourcePaths); err != nil {
//	    return err
//	}
//	extra, _ := discovery.Unreferenced(sourcePaths)
package files
