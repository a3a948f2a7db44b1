package grpcstatus

import (
	"context"
	"math"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"gotest.tools/v3/assert"

	"reltest/equality"
	"reltest/iteration"
	"reltest/violation"
)

// A worker running named checks for remote callers
var workerChecks = map[string]func() error{
	"floats": func() error {
		return equality.TotalCheckComparable(1.0, 2.0, 3.0)
	},
	"nan": func() error {
		return equality.TotalCheckComparable(0.0, -1.0, math.NaN())
	},
	"slice": func() error {
		return iteration.BidirectionalCheck(func() iteration.DoubleEnded[int] {
			return iteration.Slice([]int{1, 2, 3})
		}, iteration.ExhaustiveInterleaving())
	},
}

func startWorker(t *testing.T) *grpc.ClientConn {
	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer(grpc.UnknownServiceHandler(func(_ interface{}, stream grpc.ServerStream) error {
		name := &wrapperspb.StringValue{}
		if err := stream.RecvMsg(name); err != nil {
			return err
		}
		check, ok := workerChecks[name.GetValue()]
		if !ok {
			return status.Errorf(codes.NotFound, "no check named %q", name.GetValue())
		}
		if err := check(); err != nil {
			return Status(err).Err()
		}
		return stream.SendMsg(&emptypb.Empty{})
	}))
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.Dial("bufnet",
		grpc.WithContextDialer(func(ctx context.Context, s string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	assert.NilError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func runRemote(conn *grpc.ClientConn, name string) error {
	err := conn.Invoke(context.Background(), "/reltest.Worker/Run", wrapperspb.String(name), &emptypb.Empty{})
	return FromStatus(status.Convert(err))
}

func TestRemoteChecks(t *testing.T) {
	conn := startWorker(t)
	for i, test := range remoteTest {
		err := runRemote(conn, test.name)
		if violation.KindOf(err) != test.expected {
			t.Errorf("Received unexpected result in test %v. Got %v. Expected %v", i, err, test.expected)
		}
		if local := workerChecks[test.name](); local != nil && err.Error() != local.Error() {
			t.Errorf("Received unexpected violation in test %v. \n Got: %v\n Expected %v", i, err, local)
		}
	}
}

func TestRemoteUnknownCheck(t *testing.T) {
	conn := startWorker(t)
	err := runRemote(conn, "missing")
	assert.ErrorContains(t, err, `no check named "missing"`)
	assert.Equal(t, violation.KindOf(err), violation.None)
}

var remoteTest = []struct {
	name     string
	expected violation.Kind
}{
	{"floats", violation.None},
	{"nan", violation.ReflexivityViolation},
	{"slice", violation.None},
}
