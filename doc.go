// Package fakejson generates fake structured data from a schema of type
// descriptors.
//
// A schema is a JSON-like tree whose string leaves name a data type:
//
//	{
//	  "id": "Uuid*",
//	  "name": "FirstName",
//	  "nickname": "FirstName?",
//	  "author": "FullName[author]",
//	  "role": "admin|editor|viewer",
//	  "age": "18..99",
//	  "emails": ["FreeEmail", 1, 4]
//	}
//
// Descriptor modifiers, in precedence order:
//
//	Type[ref]   generate once per ref name and reuse the value
//	Type*       never repeat a value within the session
//	lo..hi      integer or float in [lo, hi); "lo.." goes up to the type maximum
//	a|b|c       one of the listed literals
//	Type?       omitted from the output 30% of the time
//
// Bare names resolve against user-defined types ("Name:V1|V2"), then the
// scalars Bool, Int and Float, then the injected Primitives catalog.
package fakejson
