/*
Package yajbe implements YAJBE, a compact self-describing binary data
interchange format that is a drop-in semantic replacement for JSON.

 Wire Format

 Every encoded value begins with exactly one header byte whose high bits
 classify its kind:

 head        kind
 11xxxxxx    String   (x = length form, see §4.5)
 10xxxxxx    Bytes    (x = length form, see §4.5)
 010wwwww    Int      (positive, w = value form, see §4.2)
 011wwwww    Int      (non-positive, w = value form)
 0011xxxx    Map      (x = item-count form, see §4.4)
 0010xxxx    Array    (x = item-count form)
 00001xxx    reserved (enum extension point)
 000001ww    Float    (w = width: 00 binary16, 01 binary32, 10 binary64, 11 BigNum)
 00000011    True
 00000010    False
 00000001    EOF sentinel (container child terminator)
 00000000    Null

 Map keys are not encoded as ordinary Strings: they go through the
 stateful field-name compressor in package fieldname, which exploits key
 repetition and lexical similarity across a document.

 Data Model

 The format's data model is a closed union of eight kinds: Null, Bool,
 Int, Float (including the BigNum envelope), Bytes, String, Array, Map. Package yajbe represents
 each with a concrete Go type and recognizes them in encode/decode via a
 type switch, the same shape the teacher library (BSON) uses for its
 fixed element set.

 Object mapping (struct <-> Value), compression-integration adapters,
 and a CLI live in sibling packages (structmap, streamcodec, cmd/yajbe)
 and are not part of the core codec.
*/
package yajbe
