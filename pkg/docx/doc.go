// Package docx loads, edits and saves Word documents (DOCX) through the
// typed content tree of package xml.
//
// Basic Usage:
//
//	f, err := docx.Open("letter.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dict, err := docx.NewDictionary(
//	    "{{name}}", "Jane Doe",
//	    "{{date}}", "1 May 2024",
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if _, err := f.Replace(dict); err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := f.SaveFile("letter-out.docx"); err != nil {
//	    log.Fatal(err)
//	}
//
// Substitution works on one text leaf at a time. A placeholder split across
// two runs by Word's editor is not matched.
//
// Every part other than the main document is carried through untouched.
// Logging goes through a zap logger installed with SetLogger; the default
// discards everything.
package docx
