// Package docsnap produces versioned PDF snapshots of a git-tracked document.
//
// A snapshot pins the repository to a ref, records the resolved commit in a
// JSON log keyed by a fresh UUID, renders the repository's resume.md to HTML,
// copies its style.css with the snapshot ID stamped in, and rasterizes the
// result to PDF with headless Chrome.
//
// # Quick Start
//
// Create a service, run a snapshot, and close when done:
//
//	svc := docsnap.New()
//	defer svc.Close()
//
//	res, err := svc.Snapshot(ctx, docsnap.Input{
//		RepoPath: "/path/to/repo",
//		Ref:      "main",
//		Note:     "v1",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.PDFPath)
//
// The pipeline is a strict sequence: preflight, checkout, resolve, log
// append, render, style injection, PDF export. The first failing step aborts
// the run; a checkout already performed is not reverted.
package docsnap
