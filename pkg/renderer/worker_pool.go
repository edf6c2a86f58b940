package renderer

import (
	"sync"
	"sync/atomic"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// SampleTask asks a worker to take one sample in every pixel, either inside
// stratum (SI, SJ) or, when Flat is set, anywhere in the pixel
type SampleTask struct {
	SI, SJ int
	Flat   bool
	TaskID int
}

// WorkerPool spreads the samples of a render across goroutines. The world is
// shared read-only; every worker accumulates into its own pixel buffer and
// the buffers are merged after all workers have returned.
type WorkerPool struct {
	world         *scene.World
	camera        *Camera
	integrator    integrator.Integrator
	width, height int
	tasks         []SampleTask
	logger        core.Logger
	workers       []*Worker
}

// Worker handles individual sample tasks
type Worker struct {
	ID      int
	sampler core.Sampler
	pixels  []PixelStats // Private accumulation buffer, allocated with the first task
	pool    *WorkerPool
}

// NewWorkerPool creates a pool for one render. The camera must be built with
// config.SqrtSamples() strata. Each pixel receives exactly
// config.SamplesPerPixel samples: one per stratum of the largest square grid
// that fits, plus the remainder jittered over the whole pixel. There are never
// more workers than tasks.
func NewWorkerPool(world *scene.World, camera *Camera, integ integrator.Integrator, config RenderConfig, logger core.Logger) *WorkerPool {
	if logger == nil {
		logger = core.NopLogger{}
	}

	wp := &WorkerPool{
		world:      world,
		camera:     camera,
		integrator: integ,
		width:      config.Width,
		height:     config.Height,
		logger:     logger,
	}

	n := config.SqrtSamples()
	for sj := 0; sj < n; sj++ {
		for si := 0; si < n; si++ {
			wp.tasks = append(wp.tasks, SampleTask{SI: si, SJ: sj, TaskID: len(wp.tasks)})
		}
	}
	for k := 0; k < config.FlatSamples(); k++ {
		wp.tasks = append(wp.tasks, SampleTask{Flat: true, TaskID: len(wp.tasks)})
	}

	numWorkers := config.Workers()
	if numWorkers > len(wp.tasks) {
		numWorkers = len(wp.tasks)
	}
	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:      i,
			sampler: core.NewSeededSampler(config.Seed, i),
			pool:    wp,
		})
	}

	return wp
}

// Run renders every task and returns the merged pixel statistics. It blocks
// until all workers have finished.
func (wp *WorkerPool) Run() []PixelStats {
	queue := make(chan SampleTask, len(wp.tasks))
	for _, task := range wp.tasks {
		queue <- task
	}
	close(queue)

	var completed atomic.Int64
	var wg sync.WaitGroup
	for _, worker := range wp.workers {
		wg.Add(1)
		go worker.run(queue, &completed, &wg)
	}
	wg.Wait()

	merged := make([]PixelStats, wp.width*wp.height)
	for _, worker := range wp.workers {
		if worker.pixels == nil {
			continue
		}
		for i := range merged {
			merged[i].Merge(worker.pixels[i])
		}
	}
	return merged
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return len(wp.workers)
}

// GetNumTasks returns the number of per-pixel samples, stratified or flat
func (wp *WorkerPool) GetNumTasks() int {
	return len(wp.tasks)
}

// run is the main worker loop
func (w *Worker) run(queue <-chan SampleTask, completed *atomic.Int64, wg *sync.WaitGroup) {
	defer wg.Done()

	wp := w.pool
	for task := range queue {
		if w.pixels == nil {
			w.pixels = make([]PixelStats, wp.width*wp.height)
		}
		for j := 0; j < wp.height; j++ {
			for i := 0; i < wp.width; i++ {
				var ray core.Ray
				if task.Flat {
					ray = wp.camera.GetPixelRay(i, j, w.sampler)
				} else {
					ray = wp.camera.GetRay(i, j, task.SI, task.SJ, w.sampler)
				}
				color := wp.integrator.RayColor(ray, wp.world, w.sampler).Sanitize()
				w.pixels[j*wp.width+i].AddSample(color)
			}
		}
		wp.logger.Printf("sample task %d/%d done\n", completed.Add(1), len(wp.tasks))
	}
}
