// Package gosdmx holds the input layer shared by the SDMX-JSON message
// packages.
//
// A document is read from a Source (JSON bytes, a JSON reader, or a YAML
// document) into an untyped tree while duplicate keys, nesting depth and
// size are enforced. The data, metadata and structure packages then decode
// that tree into typed messages through the wire package.
//
// Failures come in two shapes:
//
//   - Issues: the document was read but is not acceptable. Each Issue
//     carries a JSON Pointer path, a stable code and a localized message.
//   - *SourceError: the input itself could not be read.
//
// Typical usage:
//
//	msg, err := structure.Parse(ctx, gosdmx.JSONBytes(b), gosdmx.ParseOpt{
//		Strictness: gosdmx.Strictness{OnDuplicateKey: gosdmx.Error},
//		MaxDepth:   64,
//	})
//	if iss, ok := gosdmx.AsIssues(err); ok {
//		for _, it := range iss {
//			fmt.Println(it.Path, it.Code, it.Message)
//		}
//	}
package gosdmx
