/*
Package rewrite applies an ordered replacement table to every matching file in
a directory tree.

	+-----------+      +-----------+      +-------------+
	|   walk    | ---> |  filter   | ---> |  text.Table |
	| (dirs)    |      | (prune,   |      |  (ordered   |
	|           |      |  accept)  |      |   replace)  |
	+-----------+      +-----------+      +------+------+
	                                             |
	                                      +------+------+
	                                      |  FileSystem |
	                                      | (write only |
	                                      |  if changed)|
	                                      +-------------+

🎯 Purpose:
- Rename classes, fix deprecated API calls and rebrand strings by plain
  substring substitution
- Touch only files whose content actually changes

🔄 Flow:
1. Walk the root, pruning skipped directory names before descending
2. Select files by suffix (and optional ignore globs)
3. Read each file as UTF-8, apply every rule in table order
4. Write back and print "Updated: <path>" when the content differs
5. Print "Skipping <path>: <error>" on any read, decode or write failure and
   move on

⚡ Key Properties:
- Strictly sequential, one file at a time
- Rules chain: [A->B, B->C] turns "A" into "C"
- Matches are literal and can land inside comments, strings or longer
  identifiers
- Writes are in place; there is no backup or rollback

🔍 Example:

	rw, err := rewrite.New(rewrite.Options{
		Table:  preset.Table,
		Filter: preset.Filter(),
		Logger: log.New(os.Stdout, zerolog.Nop()),
	})
	if err != nil {
		return err
	}
	summary, err := rw.Run(ctx, ".")
*/
package rewrite
