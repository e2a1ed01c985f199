package parts

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lmittmann/tint"

	"github.com/djachenko/justin-utils/internal/logging"
	"github.com/djachenko/justin-utils/pathseq"
	"github.com/djachenko/justin-utils/prompt"
	"github.com/djachenko/justin-utils/seq"
)

// Tool performs the part operations on a root folder.
type Tool struct {
	Logger *slog.Logger
	// Prompter asks before each change when Confirm is set.
	Prompter *prompt.Prompter
	Confirm  bool
	// MinWidth is the smallest number of index digits to write.
	MinWidth int
}

func (t *Tool) logger() *slog.Logger {
	if t.Logger == nil {
		return logging.Discard()
	}
	return t.Logger
}

func (t *Tool) confirm(question string) (bool, error) {
	if !t.Confirm || t.Prompter == nil {
		return true, nil
	}
	return t.Prompter.AskPermission(question)
}

// Roots resolves pattern to the directories it matches.
func (t *Tool) Roots(pattern string) (*seq.Sequence[string], error) {
	return pathseq.Resolve(pattern).Macro(pathseq.DirsMacro)
}

// Make creates the parts 1..count that root does not have yet and returns
// how many were created.
func (t *Tool) Make(root string, count int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	defer logging.Measure(t.logger(), "make")()

	parts, err := Scan(root)
	if err != nil {
		return 0, err
	}
	existing := seq.ToSet(seq.Map(seq.FromSlice(parts), func(p Part) int { return p.Index }))

	width := max(IndexWidth(count), t.MinWidth)
	var missing []string
	for index := indexStart; index < indexStart+count; index++ {
		if _, ok := existing[index]; !ok {
			missing = append(missing, filepath.Join(root, Pad(index, width)))
		}
	}
	if len(missing) == 0 {
		return 0, nil
	}

	if ok, err := t.confirm(fmt.Sprintf("Create %d parts in %s?", len(missing), root)); err != nil || !ok {
		return 0, err
	}

	for i, path := range missing {
		if _, err := os.Lstat(path); err == nil {
			return i, fmt.Errorf("%w: %s", ErrPartExists, path)
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return i, fmt.Errorf("create part: %w", err)
		}
		t.logger().Debug("created part", "path", path)
	}
	t.logger().Info("created parts", "root", root, "count", len(missing))
	return len(missing), nil
}

// Renumber renames the parts of root to 1..n in index order, keeping their
// names. Parts with equal indices keep their name order.
func (t *Tool) Renumber(root string, width int) error {
	defer logging.Measure(t.logger(), "renumber")()

	parts, err := Scan(root)
	if err != nil {
		return err
	}
	if len(parts) == 0 {
		return nil
	}
	parts = seq.FromSlice(parts).SortFunc(byIndex).ToSlice()

	if ok, err := t.confirm(fmt.Sprintf("Renumber %d parts in %s?", len(parts), root)); err != nil || !ok {
		return err
	}

	width = max(IndexWidth(len(parts)), width, t.MinWidth)
	return t.move(root, parts, func(i int, p Part) string {
		return p.FileName(indexStart+i, width)
	})
}

// Offset adds offset to every part index of root. It fails without
// touching anything if an index would become negative.
func (t *Tool) Offset(root string, offset, width int) error {
	defer logging.Measure(t.logger(), "offset")()

	parts, err := Scan(root)
	if err != nil {
		return err
	}
	if len(parts) == 0 {
		return nil
	}

	lowest, _ := seq.MinBy(seq.FromSlice(parts), func(p Part) int { return p.Index })
	highest, _ := seq.MaxBy(seq.FromSlice(parts), func(p Part) int { return p.Index })
	if lowest.Index+offset < 0 {
		return fmt.Errorf("%w: %s %+d", ErrNegativeIndex, lowest.Path, offset)
	}

	if ok, err := t.confirm(fmt.Sprintf("Shift %d parts in %s by %+d?", len(parts), root, offset)); err != nil || !ok {
		return err
	}

	width = max(IndexWidth(highest.Index+offset), width, t.MinWidth)
	return t.move(root, parts, func(_ int, p Part) string {
		return p.FileName(p.Index+offset, width)
	})
}

// move renames every part through a temporary folder so that new names
// never clash with old ones. Targets are checked before anything moves;
// if a rename still fails, every part is put back under its old name.
func (t *Tool) move(root string, parts []Part, rename func(i int, p Part) string) error {
	targets, err := planTargets(root, parts, rename)
	if err != nil {
		return err
	}

	tmp, err := os.MkdirTemp(root, ".parts-")
	if err != nil {
		return fmt.Errorf("create temporary folder: %w", err)
	}

	staged := make([]string, 0, len(parts))
	for _, p := range parts {
		path := filepath.Join(tmp, filepath.Base(p.Path))
		if err := os.Rename(p.Path, path); err != nil {
			return t.rollback(tmp, parts, staged, nil, fmt.Errorf("stage %s: %w", p.Path, err))
		}
		staged = append(staged, path)
	}

	for i, p := range parts {
		if err := os.Rename(staged[i], targets[i]); err != nil {
			return t.rollback(tmp, parts, staged, targets[:i], fmt.Errorf("rename %s: %w", filepath.Base(p.Path), err))
		}
		t.logger().Debug("renamed part", "from", filepath.Base(p.Path), "to", filepath.Base(targets[i]))
	}

	if err := os.Remove(tmp); err != nil {
		t.logger().Warn("failed to remove temporary folder", "path", tmp, tint.Err(err))
	}
	t.logger().Info("renamed parts", "root", root, "count", len(parts))
	return nil
}

// planTargets resolves the new path of every part and fails if two parts
// would share one or if a target is taken by something that is not moving.
func planTargets(root string, parts []Part, rename func(i int, p Part) string) ([]string, error) {
	moving := seq.ToSet(seq.Map(seq.FromSlice(parts), func(p Part) string { return p.Path }))

	targets := make([]string, len(parts))
	claimed := make(map[string]string, len(parts))
	for i, p := range parts {
		target := filepath.Join(root, rename(i, p))
		if other, ok := claimed[target]; ok {
			return nil, fmt.Errorf("%w: %s and %s both become %s", ErrPartExists, filepath.Base(other), filepath.Base(p.Path), filepath.Base(target))
		}
		claimed[target] = p.Path

		if _, ok := moving[target]; !ok {
			if _, err := os.Lstat(target); err == nil {
				return nil, fmt.Errorf("%w: %s", ErrPartExists, target)
			}
		}
		targets[i] = target
	}
	return targets, nil
}

// rollback moves the parts that reached a target back into tmp, then every
// staged part back to its old path. cause is returned, naming tmp if
// anything is left there.
func (t *Tool) rollback(tmp string, parts []Part, staged, done []string, cause error) error {
	failed := false
	for i := len(done) - 1; i >= 0; i-- {
		if err := os.Rename(done[i], staged[i]); err != nil {
			failed = true
			t.logger().Error("failed to undo rename", "path", done[i], tint.Err(err))
		}
	}
	for i, path := range staged {
		if err := os.Rename(path, parts[i].Path); err != nil {
			failed = true
			t.logger().Error("failed to restore part", "path", parts[i].Path, tint.Err(err))
		}
	}
	if failed {
		return fmt.Errorf("%w; remaining parts are in %s", cause, tmp)
	}
	if err := os.Remove(tmp); err != nil {
		t.logger().Warn("failed to remove temporary folder", "path", tmp, tint.Err(err))
	}
	return cause
}
