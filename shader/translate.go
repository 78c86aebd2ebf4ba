package shader

import (
	"context"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
	"github.com/richinsley/gotriangle/gpu"
	options "github.com/richinsley/gotriangle/options"
)

var (
	translatorOnce sync.Once
	translator     *gst.ShaderTranslator
	translatorErr  error
)

func getTranslator(ctx context.Context) (*gst.ShaderTranslator, error) {
	translatorOnce.Do(func() {
		translator, translatorErr = gst.NewShaderTranslator(ctx)
	})
	return translator, translatorErr
}

// Translate converts source written in dialect into GLSL 3.30 for the given
// stage. Desktop GLSL is returned unchanged.
func Translate(ctx context.Context, source string, stage uint32, dialect string) (string, error) {
	switch dialect {
	case options.DialectGLSL, "":
		return source, nil
	case options.DialectWebGL2:
	default:
		return "", fmt.Errorf("%w: unknown shader dialect %q", gpu.ErrResourceSetup, dialect)
	}

	t, err := getTranslator(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: failed to start shader translator: %v", gpu.ErrResourceSetup, err)
	}
	out, err := t.TranslateShader(source, gpu.StageName(stage), gst.ShaderSpecWebGL2, gst.OutputFormatGLSL330)
	if err != nil {
		return "", fmt.Errorf("%w: %s shader translation failed: %v", gpu.ErrResourceSetup, gpu.StageName(stage), err)
	}
	return out.Code, nil
}
