package weave

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

const compositeFilename = "composite.png"

func isImage(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".gif", ".jpeg", ".jpg", ".png":
		return true
	}
	return false
}

func (w *Weaver) findDirectories(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(dir string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a directory
			if !info.Mode().IsDir() {
				return nil
			}

			select {
			case out <- dir:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (w *Weaver) directoryWorker(ctx context.Context, in <-chan string, opts Options) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for dir := range in {
			var images []string
			if err := filepath.Walk(dir, func(file string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}

				// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
				if info.Name()[0] == '.' {
					if info.Mode().IsDir() {
						return filepath.SkipDir
					}
					return nil
				}

				// Ignore anything that isn't a normal file
				if !info.Mode().IsRegular() {
					return nil
				}

				// Check files are in the "top" directory
				if filepath.Dir(file) != dir {
					return nil
				}

				// Never use a previous run's output as a source
				if info.Name() == compositeFilename {
					return nil
				}

				// Ignore any file greater than 64 MB
				if info.Size() > 64<<(10*2) {
					return nil
				}

				if !isImage(file) {
					return nil
				}

				images = append(images, file)

				return nil
			}); err != nil {
				errc <- err
				return
			}

			if len(images) < 2 {
				continue
			}
			sort.Strings(images)

			if err := w.Combine(images[0], images[1], filepath.Join(dir, compositeFilename), opts); err != nil {
				w.logger.Printf("Cannot combine \"%s\" and \"%s\": %v\n", images[0], images[1], err)
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Batch walks a directory tree and in every directory containing two
// or more source images weaves the first pair, by sorted filename,
// into a composite alongside them. Directories are processed
// concurrently; a pair that fails to combine is logged and skipped
// rather than aborting the walk.
func (w *Weaver) Batch(path string, opts Options) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	dirs, errc, err := w.findDirectories(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < 10; i++ {
		errc, err := w.directoryWorker(ctx, dirs, opts)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
