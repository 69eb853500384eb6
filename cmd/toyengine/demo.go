package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leengari/toyengine/internal/engine"
	"github.com/leengari/toyengine/internal/fs"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in table, index and filesystem walkthrough",
	Long: `Demo exercises the engine and filesystem APIs directly and logs
each step. It exits non-zero if any step does not behave as expected.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

// checker counts demo steps that did not go as expected
type checker struct {
	logger *slog.Logger
	failed int
}

func (c *checker) expect(step string, ok bool, attrs ...any) {
	if ok {
		c.logger.Info(step, attrs...)
		return
	}
	c.failed++
	c.logger.Error(step+" did not behave as expected", attrs...)
}

func runDemo(cmd *cobra.Command, args []string) error {
	c := &checker{logger: logger}

	demoTableOperations(c)
	demoIndexOperations(c)
	demoFileSystem(c)

	if c.failed > 0 {
		return fmt.Errorf("demo: %d steps failed", c.failed)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "demo completed")
	return nil
}

// demoTableOperations demonstrates insert, lookup and delete by primary key
func demoTableOperations(c *checker) {
	c.logger.Info("=== Table operations ===")

	users := engine.NewTable("users", []*engine.Column{
		engine.NewColumn("id", engine.TypeInteger, engine.PrimaryKey(), engine.NotNull()),
		engine.NewColumn("name", engine.TypeString),
	}, engine.WithLogger(c.logger))
	if cfg.Log.Mutations {
		users.AddObserver(engine.NewLoggingObserver(c.logger))
	}

	c.expect("INSERT (1, a)", users.InsertRow([]any{1, "a"}))

	err := users.Insert([]any{1, "b"})
	c.expect("INSERT (1, b) rejected", err != nil, "error", err)

	c.expect("INSERT (2, b)", users.InsertRow([]any{2, "b"}))
	c.expect("find id 1", users.FindRowByPrimaryKey(1) == 0, "position", users.FindRowByPrimaryKey(1))

	c.expect("DELETE id 1", users.DeleteRow(1))
	c.expect("id 1 gone", users.FindRowByPrimaryKey(1) == -1)
	c.expect("id 2 shifted", users.FindRowByPrimaryKey(2) == 0, "position", users.FindRowByPrimaryKey(2))

	res := users.Query(nil)
	c.expect("SELECT *", res.RowsAffected() == 1, "rows", res.Rows())
}

// demoIndexOperations shows that an index only reflects its last rebuild
func demoIndexOperations(c *checker) {
	c.logger.Info("=== Index operations ===")

	orders := engine.NewTable("orders", []*engine.Column{
		engine.NewColumn("id", engine.TypeInteger, engine.PrimaryKey()),
		engine.NewColumn("status", engine.TypeString),
	}, engine.WithLogger(c.logger))
	orders.InsertRow([]any{1, "open"})
	orders.InsertRow([]any{2, "closed"})
	orders.InsertRow([]any{3, "open"})

	idx, err := engine.NewIndex(orders, "status")
	if err != nil {
		c.expect("CREATE INDEX", false, "error", err)
		return
	}
	idx.Rebuild()
	c.expect("LOOKUP open", len(idx.Lookup("open")) == 2, "positions", idx.Lookup("open"))

	orders.InsertRow([]any{4, "open"})
	c.expect("LOOKUP open before REINDEX", len(idx.Lookup("open")) == 2, "positions", idx.Lookup("open"))

	idx.Rebuild()
	c.expect("LOOKUP open after REINDEX", len(idx.Lookup("open")) == 3, "positions", idx.Lookup("open"))

	if cfg.Shell.AutoReindex {
		orders.AddObserver(engine.AutoRebuild(idx))
		orders.InsertRow([]any{5, "open"})
		c.expect("LOOKUP open with auto reindex", len(idx.Lookup("open")) == 4, "positions", idx.Lookup("open"))
	}
}

// demoFileSystem demonstrates name collisions and path resolution
func demoFileSystem(c *checker) {
	c.logger.Info("=== Filesystem operations ===")

	fsys := fs.New(fs.WithLogger(c.logger))

	c.expect("TOUCH a.txt", fsys.CreateFile("a.txt", "hello") != nil)
	c.expect("TOUCH a.txt again rejected", fsys.CreateFile("a.txt", "x") == nil)

	if n := fsys.ResolvePath("/a.txt"); n != nil {
		c.expect("size of /a.txt", n.Size() == 5, "bytes", n.Size())
	} else {
		c.expect("resolve /a.txt", false)
	}

	c.expect("resolve /no/such/path", fsys.ResolvePath("/no/such/path") == nil)
	c.expect("resolve a.txt/sub", fsys.ResolvePath("a.txt/sub") == nil)

	docs := fsys.CreateDirectory("docs")
	c.expect("MKDIR docs", docs != nil)
	c.expect("CD docs", fsys.ChangeDirectory("docs"), "cwd", fsys.Path(fsys.Cwd()))
	fsys.CreateFile("notes.txt", "toy")
	c.expect("CD ../..", fsys.ChangeDirectory("../.."), "cwd", fsys.Path(fsys.Cwd()))
	c.expect("DU /", fsys.Root().Size() == 8, "bytes", fsys.Root().Size())
}
